package events

import (
	"sync"
	"time"
)

// DefaultSilenceDuration is the standard do-not-disturb window
const DefaultSilenceDuration = 2 * time.Minute

// SilenceWindow is the do-not-disturb timer. Checking it is a polled time
// comparison, never a blocking wait.
type SilenceWindow struct {
	mu    sync.Mutex
	until time.Time
	now   func() time.Time
}

// NewSilenceWindow creates an inactive SilenceWindow
func NewSilenceWindow() *SilenceWindow {
	return &SilenceWindow{now: time.Now}
}

// Engage starts (or extends) the window for d from now
func (w *SilenceWindow) Engage(d time.Duration) {
	w.mu.Lock()
	w.until = w.now().Add(d)
	w.mu.Unlock()
}

// Clear ends the window immediately
func (w *SilenceWindow) Clear() {
	w.mu.Lock()
	w.until = time.Time{}
	w.mu.Unlock()
}

// Active reports whether the window is currently engaged
func (w *SilenceWindow) Active() bool {
	return w.Remaining() > 0
}

// Remaining returns how long the window has left, zero when inactive
func (w *SilenceWindow) Remaining() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	remaining := w.until.Sub(w.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
