package events

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// LoadEvents reads an event list produced by the ingestion pipeline. A
// missing file yields the built-in demo rows so the dashboard is usable
// before ingestion is wired up.
func LoadEvents(fs afero.Fs, path string) ([]Event, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DemoEvents(), nil
		}
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	var evs []Event
	if err := json.Unmarshal(data, &evs); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}
	for i, ev := range evs {
		if _, err := ParseSeverity(string(ev.Severity)); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return evs, nil
}

// LoadRisks reads a risk-score list, falling back to the demo rows when
// the file does not exist
func LoadRisks(fs afero.Fs, path string) ([]RiskRecord, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DemoRisks(), nil
		}
		return nil, fmt.Errorf("reading risks file: %w", err)
	}

	var risks []RiskRecord
	if err := json.Unmarshal(data, &risks); err != nil {
		return nil, fmt.Errorf("parsing risks file: %w", err)
	}
	return risks, nil
}

// DemoEvents returns the built-in sample event rows
func DemoEvents() []Event {
	return []Event{
		{Timestamp: "2025-10-02 10:01", ExamID: "E01", Student: "HS01", EventType: "pose_right", Severity: SeverityYellow},
		{Timestamp: "2025-10-02 10:02", ExamID: "E01", Student: "HS01", EventType: "audio_ask", Severity: SeverityRed},
		{Timestamp: "2025-10-02 10:03", ExamID: "E02", Student: "HS02", EventType: "pose_down", Severity: SeverityYellow},
	}
}

// DemoRisks returns the built-in sample risk rows
func DemoRisks() []RiskRecord {
	return []RiskRecord{
		{ExamID: "E01", Student: "HS01", RiskScore: 7},
		{ExamID: "E02", Student: "HS02", RiskScore: 3},
	}
}
