package events

import "sync"

// AckLog tracks which events have been acknowledged. Callers gate the
// Acknowledge call with authz.OpAcknowledgeEvent; the log itself is just
// state.
type AckLog struct {
	mu    sync.RWMutex
	acked map[string]struct{}
}

// NewAckLog creates an empty AckLog
func NewAckLog() *AckLog {
	return &AckLog{
		acked: make(map[string]struct{}),
	}
}

// Acknowledge marks an event as handled
func (l *AckLog) Acknowledge(ev Event) {
	l.mu.Lock()
	l.acked[ev.Key()] = struct{}{}
	l.mu.Unlock()
}

// Acknowledged reports whether an event has been handled
func (l *AckLog) Acknowledged(ev Event) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.acked[ev.Key()]
	return ok
}

// Count returns how many distinct events have been acknowledged
func (l *AckLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.acked)
}
