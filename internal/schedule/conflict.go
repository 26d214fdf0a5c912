package schedule

import (
	"fmt"

	"eventdesk/internal/domain"
)

// ConflictResult is the outcome of a venue check. Conflict is nil when the
// candidate's venue is free for its window.
type ConflictResult struct {
	Conflict *domain.Session
}

// HasConflict reports whether a colliding session was found.
func (r ConflictResult) HasConflict() bool {
	return r.Conflict != nil
}

// Err returns a *domain.VenueConflictError for a conflict, or nil.
func (r ConflictResult) Err() error {
	if r.Conflict == nil {
		return nil
	}
	return domain.NewVenueConflictError(r.Conflict)
}

// CheckConflict reports the first session in existing that double-books the
// candidate's venue. Sessions without a venue never conflict, and neither does
// a cancelled candidate; cancelled sessions and the candidate itself (matched
// by ID) are ignored. Venues match by exact string equality.
//
// The candidate window must be valid; an inverted window is returned as an error.
func CheckConflict(candidate *domain.Session, existing []*domain.Session) (ConflictResult, error) {
	window, err := SessionInterval(candidate)
	if err != nil {
		return ConflictResult{}, fmt.Errorf("candidate %q: %w", candidate.Title, err)
	}
	if !candidate.HasVenue() || candidate.IsCancelled() {
		return ConflictResult{}, nil
	}
	for _, other := range existing {
		if collides(candidate, window, other) {
			return ConflictResult{Conflict: other}, nil
		}
	}
	return ConflictResult{}, nil
}

// FindConflicts is the exhaustive form of CheckConflict: it returns every
// colliding session in the order they appear in existing.
func FindConflicts(candidate *domain.Session, existing []*domain.Session) ([]*domain.Session, error) {
	window, err := SessionInterval(candidate)
	if err != nil {
		return nil, fmt.Errorf("candidate %q: %w", candidate.Title, err)
	}
	if !candidate.HasVenue() || candidate.IsCancelled() {
		return nil, nil
	}
	var out []*domain.Session
	for _, other := range existing {
		if collides(candidate, window, other) {
			out = append(out, other)
		}
	}
	return out, nil
}

func collides(candidate *domain.Session, window Interval, other *domain.Session) bool {
	if other == nil || other.IsCancelled() || other.Venue != candidate.Venue {
		return false
	}
	if candidate.ID != "" && other.ID == candidate.ID {
		return false
	}
	// stored rows with an inverted window cannot hold the venue
	otherWindow, err := SessionInterval(other)
	if err != nil {
		return false
	}
	return window.Overlaps(otherWindow)
}
