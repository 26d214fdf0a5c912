package schedule

import (
	"cmp"
	"slices"
	"time"

	"eventdesk/internal/domain"
)

// LabelLayout formats a TimelineGroup label.
const LabelLayout = "15:04"

// DayLayout formats a day facet.
const DayLayout = "2006-01-02"

// BuildTimeline groups sessions by start instant with labels in UTC.
func BuildTimeline(sessions []*domain.Session) []domain.TimelineGroup {
	return BuildTimelineIn(sessions, time.UTC)
}

// BuildTimelineIn sorts sessions by start time (stable, so equal starts keep
// their input order) and buckets consecutive sessions with the same start
// instant into one group. Labels are rendered in loc. Nothing is filtered out:
// cancelled sessions stay in the timeline. The input slice is not reordered.
func BuildTimelineIn(sessions []*domain.Session, loc *time.Location) []domain.TimelineGroup {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil {
			sorted = append(sorted, s)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *domain.Session) int {
		return a.StartTime.Compare(b.StartTime)
	})

	groups := make([]domain.TimelineGroup, 0)
	for _, s := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Start.Equal(s.StartTime) {
			groups[n-1].Sessions = append(groups[n-1].Sessions, s)
			continue
		}
		start := s.StartTime.UTC()
		groups = append(groups, domain.TimelineGroup{
			Start:    start,
			Label:    start.In(loc).Format(LabelLayout),
			Sessions: []*domain.Session{s},
		})
	}
	return groups
}

// AvailableDays returns the distinct calendar days (in loc) on which sessions start, chronologically.
func AvailableDays(sessions []*domain.Session, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	// DayLayout sorts lexically in chronological order
	return distinctSorted(sessions, func(s *domain.Session) (string, bool) {
		return s.StartTime.In(loc).Format(DayLayout), !s.StartTime.IsZero()
	})
}

// AvailableVenues returns the distinct assigned venues merged with configured, sorted lexically.
func AvailableVenues(sessions []*domain.Session, configured ...string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(v string) {
		if v == "" || v == domain.NoVenuePlaceholder {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range configured {
		add(v)
	}
	for _, s := range sessions {
		if s != nil {
			add(s.Venue)
		}
	}
	slices.Sort(out)
	return out
}

// AvailableTypes returns the distinct session types, sorted lexically.
func AvailableTypes(sessions []*domain.Session) []domain.SessionType {
	names := distinctSorted(sessions, func(s *domain.Session) (string, bool) {
		return string(s.Type), s.Type != ""
	})
	out := make([]domain.SessionType, len(names))
	for i, n := range names {
		out[i] = domain.SessionType(n)
	}
	return out
}

// AvailableTags returns the distinct tags, sorted lexically.
func AvailableTags(sessions []*domain.Session) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range sessions {
		if s == nil {
			continue
		}
		for _, t := range s.Tags {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// ExtractFacets computes every facet for sessions under the event configuration.
func ExtractFacets(sessions []*domain.Session, cfg *domain.EventConfig) domain.Facets {
	var configured []string
	if cfg != nil {
		configured = cfg.Venues
	}
	return domain.Facets{
		Days:   AvailableDays(sessions, cfg.Location()),
		Venues: AvailableVenues(sessions, configured...),
		Types:  AvailableTypes(sessions),
		Tags:   AvailableTags(sessions),
	}
}

func distinctSorted(sessions []*domain.Session, key func(*domain.Session) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range sessions {
		if s == nil {
			continue
		}
		k, ok := key(s)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.SortFunc(out, cmp.Compare[string])
	return out
}
