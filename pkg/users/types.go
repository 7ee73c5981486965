package users

import "fmt"

// Role is the closed set of dashboard roles. Every record carries exactly one.
type Role string

const (
	// RoleAdmin can manage accounts, thresholds and everything below
	RoleAdmin Role = "admin"
	// RoleProctor can view and acknowledge events within their scope
	RoleProctor Role = "proctor"
	// RoleViewer can only view the risk summary
	RoleViewer Role = "viewer"
)

// ParseRole converts a stored role string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleProctor, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProctor, RoleViewer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// UserRecord is one credential record in the store.
// Scope restricts a proctor to a single exam; the empty string means
// unrestricted. The store never holds a plaintext secret.
type UserRecord struct {
	Identity   string
	SecretHash string
	Role       Role
	Scope      string
}

// Source represents persisted user record storage
type Source interface {
	// Load returns all records, or ErrNoStore when nothing has been persisted yet
	Load() ([]UserRecord, error)
	// Save replaces the persisted record list atomically relative to readers
	Save(records []UserRecord) error
}
