package domain

import "time"

// TimelineGroup holds the sessions sharing one start instant, in stable sort order.
// swagger:model TimelineGroup
type TimelineGroup struct {
	Start    time.Time  `json:"start"`
	Label    string     `json:"label"`
	Sessions []*Session `json:"sessions"`
}

// Facets are the filter values available over a session list.
// swagger:model Facets
type Facets struct {
	// Days are calendar dates (YYYY-MM-DD) in chronological order.
	Days   []string      `json:"days"`
	Venues []string      `json:"venues"`
	Types  []SessionType `json:"types"`
	Tags   []string      `json:"tags"`
}

// TimelineView is the display model of an event schedule.
// swagger:model TimelineView
type TimelineView struct {
	EventID  string              `json:"event_id"`
	Groups   []TimelineGroup     `json:"groups"`
	Facets   Facets              `json:"facets"`
	Speakers map[string]*Speaker `json:"speakers"`
}

// ScheduleReport is the outcome of a dry-run check. Conflicts lists every
// overlapping session, not only the first.
// swagger:model ScheduleReport
type ScheduleReport struct {
	Valid      bool                     `json:"valid"`
	Problems   []string                 `json:"problems"`
	Conflicts  []*Session               `json:"conflicts"`
	Capacity   []*CapacityExceededError `json:"capacity"`
	TotalAfter int                      `json:"total_after"`
}
