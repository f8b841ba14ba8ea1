package grove

import (
	"math"
	"sync/atomic"
)

// ProgressSource supplies the growth progress read once at the top of each
// simulation tick. Implementations may be driven from other goroutines; the
// scheduler only ever sees the value returned here.
type ProgressSource interface {
	Progress() float64
}

// ProgressCell is a single-slot, last-writer-wins progress value shared
// between an asynchronous producer (the gesture recognizer) and the
// simulation tick. No queue: only the latest value matters and staleness of
// one frame is acceptable.
//
// The zero value is ready to use and reads as 0.
type ProgressCell struct {
	bits atomic.Uint64
}

// Store publishes a progress value, clamped to [0, 1]. Safe to call from any
// goroutine.
func (c *ProgressCell) Store(v float64) {
	c.bits.Store(math.Float64bits(clamp(v, 0, 1)))
}

// Progress returns the most recently stored value.
func (c *ProgressCell) Progress() float64 {
	return math.Float64frombits(c.bits.Load())
}

// StickySource wraps a fallible progress producer. When the producer reports
// an error (model failed to load, prediction failed), the last-known value
// keeps being served and a status message becomes available for the HUD; the
// simulation never stalls on a collaborator failure.
type StickySource struct {
	cell   ProgressCell
	status atomic.Pointer[string]
}

// Report records the producer's latest prediction. On success the value is
// published and any prior status is cleared; on failure the previous value is
// retained and err's message becomes the status.
func (s *StickySource) Report(v float64, err error) {
	if err != nil {
		msg := err.Error()
		s.status.Store(&msg)
		return
	}
	s.cell.Store(v)
	s.status.Store(nil)
}

// Progress returns the last successfully reported value.
func (s *StickySource) Progress() float64 {
	return s.cell.Progress()
}

// Status returns the current collaborator status message, or "" when the
// producer is healthy.
func (s *StickySource) Status() string {
	if msg := s.status.Load(); msg != nil {
		return *msg
	}
	return ""
}
