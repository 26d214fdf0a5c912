package domain

import (
	"context"
	"slices"
	"strings"
	"time"
)

// NoVenuePlaceholder is the value the session form stores when no room is picked.
// Sessions with this venue (or an empty one) never take part in double-booking checks.
const NoVenuePlaceholder = "none"

// Status is the lifecycle state of a session.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusTentative Status = "tentative"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw status to a Status. An empty value defaults to confirmed;
// any other unknown value is reported as not ok.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StatusConfirmed:
		return StatusConfirmed, true
	case StatusTentative:
		return StatusTentative, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusConfirmed || s == StatusTentative || s == StatusCancelled
}

// SessionType is the display category of a session. It carries no scheduling rule.
type SessionType string

const (
	TypeKeynote    SessionType = "keynote"
	TypeTalk       SessionType = "talk"
	TypeWorkshop   SessionType = "workshop"
	TypePanel      SessionType = "panel"
	TypeBreak      SessionType = "break"
	TypeNetworking SessionType = "networking"
	TypeOther      SessionType = "other"
)

var knownTypes = []SessionType{TypeKeynote, TypeTalk, TypeWorkshop, TypePanel, TypeBreak, TypeNetworking, TypeOther}

// ParseSessionType maps free text to a SessionType, falling back to TypeOther.
func ParseSessionType(raw string) SessionType {
	t := SessionType(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(knownTypes, t) {
		return t
	}
	return TypeOther
}

// Session is a scheduled block of event programming.
// swagger:model Session
type Session struct {
	ID        string      `json:"id"`
	EventID   string      `json:"event_id"`
	Title     string      `json:"title"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Venue     string      `json:"venue"`
	Capacity  int         `json:"capacity"`
	Status    Status      `json:"status"`
	Speakers  []string    `json:"speakers"`
	Tags      []string    `json:"tags"`
	Type      SessionType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewSession returns a new Session with the given fields. ID is typically set by the repository on create.
func NewSession(eventID, title, venue string, startTime, endTime time.Time, capacity int, status Status, sessionType SessionType, speakers, tags []string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		EventID:   eventID,
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		Venue:     venue,
		Capacity:  capacity,
		Status:    status,
		Speakers:  speakers,
		Tags:      tags,
		Type:      sessionType,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// HasVenue reports whether a room is assigned.
func (s *Session) HasVenue() bool {
	return s.Venue != "" && s.Venue != NoVenuePlaceholder
}

// IsCancelled reports whether the session no longer occupies its venue.
func (s *Session) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	c.Speakers = slices.Clone(s.Speakers)
	c.Tags = slices.Clone(s.Tags)
	return &c
}

// Validate checks the structural rules every stored session must satisfy.
// It returns a *ValidationError listing every problem found, or nil.
func (s *Session) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Title) == "" {
		problems = append(problems, "title is required")
	}
	if s.StartTime.IsZero() {
		problems = append(problems, "start_time is required")
	}
	if s.EndTime.IsZero() {
		problems = append(problems, "end_time is required")
	}
	if !s.StartTime.IsZero() && !s.EndTime.IsZero() && !s.EndTime.After(s.StartTime) {
		problems = append(problems, "end_time must be after start_time")
	}
	if s.Capacity < 0 {
		problems = append(problems, "capacity must not be negative")
	}
	if !s.Status.Valid() {
		problems = append(problems, "status must be one of confirmed, tentative, cancelled")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// SessionDraft is the user-supplied input for a new session.
type SessionDraft struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Venue     string
	Capacity  int
	Status    string
	Type      string
	Speakers  []string
	Tags      []string
}

// ToSession builds a candidate session for eventID. Times are normalized to UTC,
// speakers deduplicated, and an unknown status is kept as-is so Validate reports it.
func (d SessionDraft) ToSession(eventID string, now time.Time) *Session {
	status, ok := ParseStatus(d.Status)
	if !ok {
		status = Status(d.Status)
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return NewSession(eventID, strings.TrimSpace(d.Title), d.Venue,
		d.StartTime.UTC(), d.EndTime.UTC(), d.Capacity, status, ParseSessionType(d.Type),
		DedupeSpeakers(d.Speakers), slices.Clone(tags), now, now)
}

// SessionPatch is a partial update. Nil fields are left unchanged.
type SessionPatch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
	Venue     *string
	Capacity  *int
	Status    *Status
	Type      *SessionType
	Speakers  []string
	Tags      []string
}

// IsEmpty reports whether the patch changes nothing.
func (p SessionPatch) IsEmpty() bool {
	return p.Title == nil && p.StartTime == nil && p.EndTime == nil && p.Venue == nil &&
		p.Capacity == nil && p.Status == nil && p.Type == nil && p.Speakers == nil && p.Tags == nil
}

// Apply returns a copy of s with the patch merged in. s is not modified.
func (p SessionPatch) Apply(s *Session) *Session {
	out := s.Clone()
	if p.Title != nil {
		out.Title = strings.TrimSpace(*p.Title)
	}
	if p.StartTime != nil {
		out.StartTime = p.StartTime.UTC()
	}
	if p.EndTime != nil {
		out.EndTime = p.EndTime.UTC()
	}
	if p.Venue != nil {
		out.Venue = *p.Venue
	}
	if p.Capacity != nil {
		out.Capacity = *p.Capacity
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Speakers != nil {
		out.Speakers = DedupeSpeakers(p.Speakers)
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	return out
}

// DedupeSpeakers drops empty and repeated speaker ids, keeping first-seen order.
func DedupeSpeakers(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// SessionRepository is the only port to durable session storage.
// Implementations map storage columns to Session; callers never see column names.
type SessionRepository interface {
	// ListByEventID returns every session of the event, cancelled ones included.
	ListByEventID(ctx context.Context, eventID string) ([]*Session, error)
	// Create persists s and sets its server-assigned ID.
	Create(ctx context.Context, s *Session) error
	// Update persists the patch and returns the stored record.
	Update(ctx context.Context, id string, patch SessionPatch) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService is the scheduling-aware entry point used by the dashboard handlers.
type SessionService interface {
	ListSessions(ctx context.Context, eventID string) ([]*Session, error)
	CreateSession(ctx context.Context, eventID string, draft SessionDraft) (*Session, error)
	UpdateSession(ctx context.Context, eventID, sessionID string, patch SessionPatch) (*Session, error)
	CancelSession(ctx context.Context, eventID, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, eventID, sessionID string) error
	// CheckSession runs every scheduling check for draft without writing. excludeID is the id
	// of the session being edited, or empty for a new one.
	CheckSession(ctx context.Context, eventID, excludeID string, draft SessionDraft) (*ScheduleReport, error)
	Timeline(ctx context.Context, eventID string) (*TimelineView, error)
}
