package schedule

import (
	"errors"

	"eventdesk/internal/domain"
)

// CapacityResult is the outcome of the capacity rules. With no ceiling both
// flags are false and Ceiling is nil; Total is still computed.
type CapacityResult struct {
	Ceiling *int

	// Total is the sum of non-cancelled capacities once the candidate is in place.
	Total              int
	PerSessionExceeded bool
	AggregateExceeded  bool

	candidate int
}

// OK reports whether both rules pass.
func (r CapacityResult) OK() bool {
	return !r.PerSessionExceeded && !r.AggregateExceeded
}

// Errors returns one *domain.CapacityExceededError per failed rule, per-session first.
func (r CapacityResult) Errors() []*domain.CapacityExceededError {
	if r.Ceiling == nil {
		return nil
	}
	var out []*domain.CapacityExceededError
	if r.PerSessionExceeded {
		out = append(out, &domain.CapacityExceededError{Kind: domain.CapacityPerSession, Total: r.candidate, Ceiling: *r.Ceiling})
	}
	if r.AggregateExceeded {
		out = append(out, &domain.CapacityExceededError{Kind: domain.CapacityAggregate, Total: r.Total, Ceiling: *r.Ceiling})
	}
	return out
}

// Err joins Errors into one error, or returns nil when the candidate passes.
func (r CapacityResult) Err() error {
	errs := r.Errors()
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

// CheckCapacity validates candidate against the event ceiling. A nil ceiling
// always passes. The per-session rule is candidate.Capacity <= ceiling; the
// aggregate rule sums every non-cancelled session in existing (skipping the
// candidate's own ID, which it replaces) plus the candidate, inclusive of the
// boundary. A cancelled candidate contributes nothing to the aggregate.
func CheckCapacity(candidate *domain.Session, existing []*domain.Session, ceiling *int) CapacityResult {
	total := 0
	for _, s := range existing {
		if s == nil || s.IsCancelled() {
			continue
		}
		if candidate.ID != "" && s.ID == candidate.ID {
			continue
		}
		total += s.Capacity
	}
	if !candidate.IsCancelled() {
		total += candidate.Capacity
	}
	if ceiling == nil {
		return CapacityResult{Total: total, candidate: candidate.Capacity}
	}
	return CapacityResult{
		Ceiling:            ceiling,
		Total:              total,
		PerSessionExceeded: candidate.Capacity > *ceiling,
		AggregateExceeded:  total > *ceiling,
		candidate:          candidate.Capacity,
	}
}
