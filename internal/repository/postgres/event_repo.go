package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns the event configuration source backed by the events table.
func NewEventRepository(db *sql.DB) domain.EventConfigSource {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetEventConfig(ctx context.Context, eventID string) (*domain.EventConfig, error) {
	query := `
		SELECT id, max_capacity, venues, timezone
		FROM events
		WHERE id = $1
	`
	cfg := &domain.EventConfig{}
	var maxCapacity sql.NullInt64
	var venues pq.StringArray
	var timezone sql.NullString
	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&cfg.EventID, &maxCapacity, &venues, &timezone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if maxCapacity.Valid {
		n := int(maxCapacity.Int64)
		cfg.MaxCapacity = &n
	}
	cfg.Venues = []string(venues)
	if cfg.Venues == nil {
		cfg.Venues = []string{}
	}
	if timezone.Valid {
		cfg.Timezone = timezone.String
	}
	return cfg, nil
}
