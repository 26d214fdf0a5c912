package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   Status
		wantOK bool
	}{
		{"", StatusConfirmed, true},
		{"confirmed", StatusConfirmed, true},
		{" Tentative ", StatusTentative, true},
		{"CANCELLED", StatusCancelled, true},
		{"postponed", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSessionType(t *testing.T) {
	assert.Equal(t, TypeKeynote, ParseSessionType("Keynote"))
	assert.Equal(t, TypeWorkshop, ParseSessionType(" workshop"))
	assert.Equal(t, TypeOther, ParseSessionType("fireside chat"))
	assert.Equal(t, TypeOther, ParseSessionType(""))
}

func TestSession_Validate(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	valid := func() *Session {
		return &Session{Title: "Talk", StartTime: start, EndTime: start.Add(time.Hour), Status: StatusConfirmed}
	}

	tests := []struct {
		name    string
		mutate  func(s *Session)
		problem string
	}{
		{"valid", func(s *Session) {}, ""},
		{"blank title", func(s *Session) { s.Title = "   " }, "title is required"},
		{"missing start", func(s *Session) { s.StartTime = time.Time{} }, "start_time is required"},
		{"missing end", func(s *Session) { s.EndTime = time.Time{} }, "end_time is required"},
		{"zero length", func(s *Session) { s.EndTime = s.StartTime }, "end_time must be after start_time"},
		{"inverted", func(s *Session) { s.EndTime = s.StartTime.Add(-time.Minute) }, "end_time must be after start_time"},
		{"negative capacity", func(s *Session) { s.Capacity = -1 }, "capacity must not be negative"},
		{"unknown status", func(s *Session) { s.Status = "postponed" }, "status must be one of confirmed, tentative, cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.problem == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Problems, tt.problem)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSessionDraft_ToSession(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := SessionDraft{
		Title:     "  Opening  ",
		StartTime: time.Date(2025, 3, 1, 19, 0, 0, 0, tokyo),
		EndTime:   time.Date(2025, 3, 1, 20, 0, 0, 0, tokyo),
		Venue:     "Hall A",
		Capacity:  120,
		Type:      "Keynote",
		Speakers:  []string{"sp-1", "sp-2", "sp-1", ""},
	}

	s := d.ToSession("ev-1", now)
	assert.Equal(t, "ev-1", s.EventID)
	assert.Equal(t, "Opening", s.Title)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), s.StartTime)
	assert.Equal(t, time.UTC, s.StartTime.Location())
	assert.Equal(t, StatusConfirmed, s.Status)
	assert.Equal(t, TypeKeynote, s.Type)
	assert.Equal(t, []string{"sp-1", "sp-2"}, s.Speakers)
	assert.Equal(t, []string{}, s.Tags)
	assert.Equal(t, now, s.CreatedAt)

	d.Status = "later"
	assert.Error(t, d.ToSession("ev-1", now).Validate())
}

func TestSessionPatch_Apply(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	orig := &Session{
		ID: "s-1", Title: "Talk", StartTime: start, EndTime: start.Add(time.Hour),
		Venue: "Hall A", Capacity: 50, Status: StatusConfirmed, Type: TypeTalk,
		Speakers: []string{"sp-1"}, Tags: []string{"go"},
	}

	assert.True(t, SessionPatch{}.IsEmpty())

	title := "Renamed"
	venue := "Hall B"
	cancelled := StatusCancelled
	p := SessionPatch{Title: &title, Venue: &venue, Status: &cancelled, Tags: []string{"rust"}}
	assert.False(t, p.IsEmpty())

	out := p.Apply(orig)
	assert.Equal(t, "Renamed", out.Title)
	assert.Equal(t, "Hall B", out.Venue)
	assert.Equal(t, StatusCancelled, out.Status)
	assert.Equal(t, []string{"rust"}, out.Tags)
	assert.Equal(t, []string{"sp-1"}, out.Speakers)
	assert.Equal(t, orig.StartTime, out.StartTime)

	// input untouched
	assert.Equal(t, "Talk", orig.Title)
	assert.Equal(t, "Hall A", orig.Venue)
	assert.Equal(t, []string{"go"}, orig.Tags)
}

func TestSession_HasVenue(t *testing.T) {
	assert.False(t, (&Session{}).HasVenue())
	assert.False(t, (&Session{Venue: NoVenuePlaceholder}).HasVenue())
	assert.True(t, (&Session{Venue: "Hall A"}).HasVenue())
}

func TestEventConfig_Location(t *testing.T) {
	var nilCfg *EventConfig
	assert.Equal(t, time.UTC, nilCfg.Location())
	assert.Equal(t, time.UTC, (&EventConfig{}).Location())
	assert.Equal(t, time.UTC, (&EventConfig{Timezone: "Not/AZone"}).Location())
}

func TestErrorMessages(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	conflict := NewVenueConflictError(&Session{ID: "s-1", Title: "Keynote", Venue: "Hall A", StartTime: start, EndTime: start.Add(time.Hour)})
	assert.Equal(t, `venue "Hall A" is already booked by "Keynote" from 2025-03-01T10:00:00Z to 2025-03-01T11:00:00Z`, conflict.Error())

	agg := &CapacityExceededError{Kind: CapacityAggregate, Total: 550, Ceiling: 500}
	assert.Equal(t, "total session capacity 550 exceeds total event capacity 500", agg.Error())
	per := &CapacityExceededError{Kind: CapacityPerSession, Total: 600, Ceiling: 500}
	assert.Equal(t, "session capacity 600 exceeds per-session ceiling 500", per.Error())

	repoErr := &RepositoryError{Op: "create", Err: errors.New("connection reset")}
	assert.Equal(t, "repository create: connection reset", repoErr.Error())
	assert.ErrorIs(t, repoErr, repoErr.Err)
}
