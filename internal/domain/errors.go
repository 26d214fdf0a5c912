package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrGuardBusy is returned when another editor holds the event's commit guard.
	ErrGuardBusy = errors.New("schedule is being modified, try again")
)

// ValidationError reports a structurally invalid session (missing fields, bad window).
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid session: " + strings.Join(e.Problems, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// VenueConflictError reports that the candidate's window overlaps another
// non-cancelled session in the same venue.
type VenueConflictError struct {
	Venue         string    `json:"venue"`
	ConflictingID string    `json:"conflicting_session_id"`
	ConflictTitle string    `json:"conflicting_title"`
	ConflictStart time.Time `json:"conflict_start"`
	ConflictEnd   time.Time `json:"conflict_end"`
}

// NewVenueConflictError builds the error from the session that already holds the venue.
func NewVenueConflictError(conflicting *Session) *VenueConflictError {
	return &VenueConflictError{
		Venue:         conflicting.Venue,
		ConflictingID: conflicting.ID,
		ConflictTitle: conflicting.Title,
		ConflictStart: conflicting.StartTime,
		ConflictEnd:   conflicting.EndTime,
	}
}

func (e *VenueConflictError) Error() string {
	return fmt.Sprintf("venue %q is already booked by %q from %s to %s",
		e.Venue, e.ConflictTitle,
		e.ConflictStart.UTC().Format(time.RFC3339), e.ConflictEnd.UTC().Format(time.RFC3339))
}

// CapacityKind distinguishes the two capacity rules.
type CapacityKind string

const (
	CapacityPerSession CapacityKind = "per_session"
	CapacityAggregate  CapacityKind = "aggregate"
)

// CapacityExceededError reports a breach of the event capacity ceiling.
// For CapacityPerSession, Total is the candidate's own capacity.
type CapacityExceededError struct {
	Kind    CapacityKind `json:"kind"`
	Total   int          `json:"total"`
	Ceiling int          `json:"ceiling"`
}

func (e *CapacityExceededError) Error() string {
	if e.Kind == CapacityPerSession {
		return fmt.Sprintf("session capacity %d exceeds per-session ceiling %d", e.Total, e.Ceiling)
	}
	return fmt.Sprintf("total session capacity %d exceeds total event capacity %d", e.Total, e.Ceiling)
}

// RepositoryError wraps any failure of the session storage adapter.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
