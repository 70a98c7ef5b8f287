package reservation

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open interval [start, end). Immutable; build a new slot
// instead of mutating when a reservation is rescheduled.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two half-open intervals intersect. A slot ending
// exactly when the other starts does not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// StartsBefore reports whether the slot begins before the given instant,
// the past-booking check against an injected clock.
func (ts TimeSlot) StartsBefore(now time.Time) bool {
	return ts.start.Before(now)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
