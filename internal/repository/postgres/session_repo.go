package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

const sessionColumns = `id, event_id, title, start_time, end_time, venue, capacity, status, session_type, speakers, tags, created_at, updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var status, sessionType string
	var speakers, tags pq.StringArray
	if err := row.Scan(
		&s.ID, &s.EventID, &s.Title, &s.StartTime, &s.EndTime, &s.Venue, &s.Capacity,
		&status, &sessionType, &speakers, &tags, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Status = domain.Status(status)
	s.Type = domain.ParseSessionType(sessionType)
	s.Speakers = []string(speakers)
	if s.Speakers == nil {
		s.Speakers = []string{}
	}
	s.Tags = []string(tags)
	if s.Tags == nil {
		s.Tags = []string{}
	}
	s.StartTime = s.StartTime.UTC()
	s.EndTime = s.EndTime.UTC()
	return s, nil
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE event_id = $1
		ORDER BY start_time, venue, id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (event_id, title, start_time, end_time, venue, capacity, status, session_type, speakers, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.EventID, s.Title, s.StartTime, s.EndTime, s.Venue, s.Capacity,
		string(s.Status), string(s.Type), pq.Array(s.Speakers), pq.Array(s.Tags),
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

// Update writes only the fields set in patch and returns the stored row.
func (r *sessionRepository) Update(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	set := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		set("title", strings.TrimSpace(*patch.Title))
	}
	if patch.StartTime != nil {
		set("start_time", patch.StartTime.UTC())
	}
	if patch.EndTime != nil {
		set("end_time", patch.EndTime.UTC())
	}
	if patch.Venue != nil {
		set("venue", *patch.Venue)
	}
	if patch.Capacity != nil {
		set("capacity", *patch.Capacity)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.Type != nil {
		set("session_type", string(*patch.Type))
	}
	if patch.Speakers != nil {
		set("speakers", pq.Array(domain.DedupeSpeakers(patch.Speakers)))
	}
	if patch.Tags != nil {
		set("tags", pq.Array(patch.Tags))
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE sessions SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), sessionColumns)

	s, err := scanSession(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
