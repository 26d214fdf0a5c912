package domain

import (
	"context"
	"time"
)

// EventConfig is the per-event scheduling configuration handed to the engine
// on every check. It replaces any cached, event-keyed state.
// swagger:model EventConfig
type EventConfig struct {
	EventID string `json:"event_id"`
	// MaxCapacity is the event attendee ceiling. Nil disables capacity checks.
	MaxCapacity *int `json:"max_capacity"`
	// Venues lists the rooms configured for the event, in display order.
	Venues []string `json:"venues"`
	// Timezone is an IANA name used for timeline labels and day facets. Empty means UTC.
	Timezone string `json:"timezone"`
}

// Location resolves Timezone, falling back to UTC for empty or unknown names.
func (c *EventConfig) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EventConfigSource supplies the configuration of an event.
type EventConfigSource interface {
	GetEventConfig(ctx context.Context, eventID string) (*EventConfig, error)
}
