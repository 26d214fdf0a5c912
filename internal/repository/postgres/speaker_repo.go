package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerDirectory {
	return &speakerRepository{
		DB: db,
	}
}

// ListByIDs returns the speakers among ids, ordered by name. Unknown ids are skipped.
func (r *speakerRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	if len(ids) == 0 {
		return []*domain.Speaker{}, nil
	}
	query := `
		SELECT id, full_name, email, tag_line, profile_picture
		FROM speakers
		WHERE id::text = ANY($1)
		ORDER BY full_name, id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := []*domain.Speaker{}
	for rows.Next() {
		sp := &domain.Speaker{}
		var email, tagLine, picture sql.NullString
		if err := rows.Scan(&sp.ID, &sp.FullName, &email, &tagLine, &picture); err != nil {
			return nil, err
		}
		sp.Email = email.String
		sp.TagLine = tagLine.String
		sp.ProfilePicture = picture.String
		speakers = append(speakers, sp)
	}
	return speakers, rows.Err()
}
