// Package schedule holds the pure scheduling rules: interval overlap, venue
// conflict detection, capacity validation and timeline aggregation. Nothing in
// this package performs I/O or keeps state between calls.
package schedule

import (
	"errors"
	"time"

	"eventdesk/internal/domain"
)

// ErrInvalidInterval is returned for a window whose end is not after its start.
var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the window [start, end) or ErrInvalidInterval.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// SessionInterval returns the window of s.
func SessionInterval(s *domain.Session) (Interval, error) {
	return NewInterval(s.StartTime, s.EndTime)
}

// Overlaps reports whether i and o share any instant. Back-to-back windows,
// where one ends exactly when the other starts, do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
