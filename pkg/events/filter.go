package events

import "github.com/quangdm/proctorgate/pkg/authz"

// FilterEvents returns the events admitted by the scope predicate. This is
// the sole data-isolation mechanism between proctors of different exams,
// so it must be applied to every dataset before display.
func FilterEvents(evs []Event, admit authz.ScopePredicate) []Event {
	out := make([]Event, 0, len(evs))
	for _, ev := range evs {
		if admit(ev.ExamID) {
			out = append(out, ev)
		}
	}
	return out
}

// FilterRisks returns the risk records admitted by the scope predicate
func FilterRisks(risks []RiskRecord, admit authz.ScopePredicate) []RiskRecord {
	out := make([]RiskRecord, 0, len(risks))
	for _, r := range risks {
		if admit(r.ExamID) {
			out = append(out, r)
		}
	}
	return out
}
