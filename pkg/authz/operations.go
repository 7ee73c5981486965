package authz

import (
	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

// Operation is the closed set of gated dashboard operations
type Operation int

const (
	// OpViewEvents is viewing the scope-filtered event/risk tables
	OpViewEvents Operation = iota
	// OpToggleSilence is engaging or clearing the silence (DND) window
	OpToggleSilence
	// OpAcknowledgeEvent is acknowledging a proctoring event
	OpAcknowledgeEvent
	// OpEditThresholds is editing the detection thresholds
	OpEditThresholds
	// OpManageUsers is any user-management mutation
	OpManageUsers
)

func (op Operation) String() string {
	switch op {
	case OpViewEvents:
		return "view_events"
	case OpToggleSilence:
		return "toggle_silence"
	case OpAcknowledgeEvent:
		return "acknowledge_event"
	case OpEditThresholds:
		return "edit_thresholds"
	case OpManageUsers:
		return "manage_users"
	}
	return "unknown"
}

// allowedRoles is the role/operation matrix. Viewers get the risk-only
// view through OpViewEvents; everything else is proctor-and-up or
// admin-only.
var allowedRoles = map[Operation][]users.Role{
	OpViewEvents:       {users.RoleAdmin, users.RoleProctor, users.RoleViewer},
	OpToggleSilence:    {users.RoleAdmin, users.RoleProctor},
	OpAcknowledgeEvent: {users.RoleAdmin, users.RoleProctor},
	OpEditThresholds:   {users.RoleAdmin},
	OpManageUsers:      {users.RoleAdmin},
}

// RolesFor returns the roles allowed to perform op
func RolesFor(op Operation) []users.Role {
	return append([]users.Role(nil), allowedRoles[op]...)
}

// Can authorizes the session for a specific operation
func Can(sess *session.Session, op Operation) error {
	return Authorize(sess, allowedRoles[op]...)
}
