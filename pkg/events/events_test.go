package events

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/quangdm/proctorgate/pkg/authz"
	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

func TestParseSeverity(t *testing.T) {
	for _, valid := range []string{"RED", "YELLOW", "GREEN"} {
		if _, err := ParseSeverity(valid); err != nil {
			t.Errorf("ParseSeverity(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseSeverity("ORANGE"); err == nil {
		t.Error("expected error for unknown severity")
	}
}

func TestFilterEvents(t *testing.T) {
	evs := []Event{
		{Timestamp: "2025-10-02 10:01", ExamID: "E01", Student: "HS01", EventType: "pose_right", Severity: SeverityYellow},
		{Timestamp: "2025-10-02 10:02", ExamID: "E01", Student: "HS01", EventType: "audio_ask", Severity: SeverityRed},
		{Timestamp: "2025-10-02 10:03", ExamID: "E02", Student: "HS02", EventType: "pose_down", Severity: SeverityYellow},
	}

	t.Run("scoped proctor sees only their exam", func(t *testing.T) {
		sess := &session.Session{Authenticated: true, Identity: "gv01", Role: users.RoleProctor, Scope: "E01"}
		got := FilterEvents(evs, authz.ScopeFilter(sess))
		if len(got) != 2 {
			t.Fatalf("expected 2 events, got %d", len(got))
		}
		for _, ev := range got {
			if ev.ExamID != "E01" {
				t.Errorf("foreign exam leaked: %+v", ev)
			}
		}
	})

	t.Run("unrestricted admin sees everything", func(t *testing.T) {
		sess := &session.Session{Authenticated: true, Identity: "admin1", Role: users.RoleAdmin}
		if got := FilterEvents(evs, authz.ScopeFilter(sess)); len(got) != 3 {
			t.Errorf("expected all 3 events, got %d", len(got))
		}
	})
}

func TestFilterRisks(t *testing.T) {
	risks := []RiskRecord{
		{ExamID: "E01", Student: "HS01", RiskScore: 7},
		{ExamID: "E02", Student: "HS02", RiskScore: 3},
	}

	sess := &session.Session{Authenticated: true, Role: users.RoleViewer, Scope: "E01"}
	got := FilterRisks(risks, authz.ScopeFilter(sess))
	if len(got) != 1 || got[0].ExamID != "E01" {
		t.Errorf("expected only the E01 risk row, got %+v", got)
	}
}

func TestLoadEvents(t *testing.T) {
	t.Run("missing file falls back to demo rows", func(t *testing.T) {
		evs, err := LoadEvents(afero.NewMemMapFs(), "/data/events.json")
		if err != nil {
			t.Fatalf("LoadEvents failed: %v", err)
		}
		if len(evs) != 3 {
			t.Errorf("expected 3 demo events, got %d", len(evs))
		}
	})

	t.Run("reads ingested file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := `[{"ts":"2025-10-02 11:00","exam_id":"E03","student":"HS09","event":"pose_left","severity":"GREEN"}]`
		afero.WriteFile(fs, "/data/events.json", []byte(data), 0644)

		evs, err := LoadEvents(fs, "/data/events.json")
		if err != nil {
			t.Fatalf("LoadEvents failed: %v", err)
		}
		if len(evs) != 1 || evs[0].ExamID != "E03" || evs[0].Severity != SeverityGreen {
			t.Errorf("unexpected events: %+v", evs)
		}
	})

	t.Run("rejects unknown severities", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := `[{"ts":"t","exam_id":"E01","student":"HS01","event":"x","severity":"PURPLE"}]`
		afero.WriteFile(fs, "/data/events.json", []byte(data), 0644)

		if _, err := LoadEvents(fs, "/data/events.json"); err == nil {
			t.Error("expected error for unknown severity")
		}
	})
}

func TestAckLog(t *testing.T) {
	log := NewAckLog()
	evs := DemoEvents()

	if log.Acknowledged(evs[0]) {
		t.Error("fresh log already has acknowledgements")
	}

	log.Acknowledge(evs[0])
	if !log.Acknowledged(evs[0]) {
		t.Error("acknowledgement not recorded")
	}
	if log.Acknowledged(evs[1]) {
		t.Error("acknowledgement leaked to another event")
	}

	// Re-acknowledging is idempotent
	log.Acknowledge(evs[0])
	if log.Count() != 1 {
		t.Errorf("expected 1 acknowledged event, got %d", log.Count())
	}
}

func TestSilenceWindow(t *testing.T) {
	w := NewSilenceWindow()
	now := time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	if w.Active() {
		t.Error("fresh window already active")
	}

	w.Engage(DefaultSilenceDuration)
	if !w.Active() {
		t.Error("window not active after Engage")
	}
	if got := w.Remaining(); got != DefaultSilenceDuration {
		t.Errorf("expected %v remaining, got %v", DefaultSilenceDuration, got)
	}

	// Expiry is a polled comparison, no timer involved
	now = now.Add(DefaultSilenceDuration + time.Second)
	if w.Active() {
		t.Error("window still active after expiry")
	}
	if got := w.Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %v", got)
	}

	w.Engage(time.Minute)
	w.Clear()
	if w.Active() {
		t.Error("window active after Clear")
	}
}

func TestThresholds(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("defaults when file missing", func(t *testing.T) {
		got, err := LoadThresholds(fs, "/data/thresholds.json")
		if err != nil {
			t.Fatalf("LoadThresholds failed: %v", err)
		}
		if got != DefaultThresholds() {
			t.Errorf("expected defaults, got %+v", got)
		}
		if got.PitchDegrees != -15 || got.YawDegrees != 20 {
			t.Errorf("unexpected stock limits: %+v", got)
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		want := Thresholds{PitchDegrees: -10, YawDegrees: 25}
		if err := SaveThresholds(fs, "/data/thresholds.json", want); err != nil {
			t.Fatalf("SaveThresholds failed: %v", err)
		}
		got, err := LoadThresholds(fs, "/data/thresholds.json")
		if err != nil {
			t.Fatalf("LoadThresholds failed: %v", err)
		}
		if got != want {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})
}
