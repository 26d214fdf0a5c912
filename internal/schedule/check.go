package schedule

import (
	"errors"

	"eventdesk/internal/domain"
)

// Check validates candidate and then applies the venue and capacity rules
// against existing. A *domain.ValidationError stops the sequence; otherwise
// venue and capacity failures are all returned, venue first.
func Check(candidate *domain.Session, existing []*domain.Session, ceiling *int) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	conflict, err := CheckConflict(candidate, existing)
	if err != nil {
		return err
	}

	var errs []error
	if err := conflict.Err(); err != nil {
		errs = append(errs, err)
	}
	for _, e := range CheckCapacity(candidate, existing, ceiling).Errors() {
		errs = append(errs, e)
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return errors.Join(errs...)
}

// Report runs every rule without stopping early and lists all conflicts.
func Report(candidate *domain.Session, existing []*domain.Session, ceiling *int) *domain.ScheduleReport {
	report := &domain.ScheduleReport{
		Problems:  []string{},
		Conflicts: []*domain.Session{},
		Capacity:  []*domain.CapacityExceededError{},
	}
	if err := candidate.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			report.Problems = append(report.Problems, verr.Problems...)
		}
		return report
	}
	// window validated above
	conflicts, _ := FindConflicts(candidate, existing)
	report.Conflicts = append(report.Conflicts, conflicts...)

	capacity := CheckCapacity(candidate, existing, ceiling)
	report.Capacity = append(report.Capacity, capacity.Errors()...)
	report.TotalAfter = capacity.Total
	report.Valid = len(report.Conflicts) == 0 && len(report.Capacity) == 0
	return report
}
