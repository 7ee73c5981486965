package session

import (
	"testing"
	"time"

	"github.com/quangdm/proctorgate/pkg/users"
)

func TestSession_Logout(t *testing.T) {
	lockedUntil := time.Now().Add(30 * time.Second)
	sess := &Session{
		ID:             "s1",
		Authenticated:  true,
		Identity:       "gv01",
		Role:           users.RoleProctor,
		Scope:          "E01",
		FailedAttempts: 4,
		LockedUntil:    lockedUntil,
	}

	sess.Logout()

	if sess.Authenticated {
		t.Error("still authenticated after logout")
	}
	if sess.Identity != "" || sess.Role != "" || sess.Scope != "" {
		t.Errorf("identity state not cleared: %+v", sess)
	}

	// Lockout state belongs to the session's login flow and survives logout
	if sess.FailedAttempts != 4 {
		t.Errorf("failed attempts reset by logout: %d", sess.FailedAttempts)
	}
	if !sess.LockedUntil.Equal(lockedUntil) {
		t.Error("lockout deadline reset by logout")
	}
}

func TestManager(t *testing.T) {
	m := NewManager()

	t.Run("begin registers a logged-out session", func(t *testing.T) {
		sess := m.Begin()
		if sess.ID == "" {
			t.Error("expected a session ID")
		}
		if sess.Authenticated {
			t.Error("new session must start logged out")
		}
		got, ok := m.Get(sess.ID)
		if !ok || got != sess {
			t.Error("Get did not return the registered session")
		}
	})

	t.Run("sessions are independent", func(t *testing.T) {
		a := m.Begin()
		b := m.Begin()
		if a.ID == b.ID {
			t.Fatal("two sessions share an ID")
		}
		a.FailedAttempts = 5
		if b.FailedAttempts != 0 {
			t.Error("lockout state leaked across sessions")
		}
	})

	t.Run("end destroys the session", func(t *testing.T) {
		sess := m.Begin()
		m.End(sess.ID)
		if _, ok := m.Get(sess.ID); ok {
			t.Error("session still reachable after End")
		}
	})
}
