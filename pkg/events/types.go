// Package events models the data the dashboard consumes from the
// event-ingestion collaborator: proctoring events and per-student risk
// scores, plus the small bits of monitor state (acknowledgements, the
// silence window, detection thresholds) that sit next to them.
package events

import "fmt"

// Severity is the closed severity set used by the ingestion pipeline
type Severity string

const (
	SeverityRed    Severity = "RED"
	SeverityYellow Severity = "YELLOW"
	SeverityGreen  Severity = "GREEN"
)

// ParseSeverity converts an ingested severity string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityRed, SeverityYellow, SeverityGreen:
		return Severity(s), nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// Event is one proctoring event as produced by the ingestion pipeline
type Event struct {
	Timestamp string   `json:"ts"`
	ExamID    string   `json:"exam_id"`
	Student   string   `json:"student"`
	EventType string   `json:"event"`
	Severity  Severity `json:"severity"`
}

// Key identifies an event for acknowledgement tracking
func (e Event) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s", e.ExamID, e.Student, e.Timestamp, e.EventType)
}

// RiskRecord is one per-student risk score
type RiskRecord struct {
	ExamID    string `json:"exam_id"`
	Student   string `json:"student"`
	RiskScore int    `json:"risk"`
}
