package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCols = []string{"id", "event_id", "title", "start_time", "end_time", "venue", "capacity", "status", "session_type", "speakers", "tags", "created_at", "updated_at"}

func sessionRow(id, title, venue string, start, end time.Time, capacity int, status string) []driver.Value {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []driver.Value{id, "ev-1", title, start, end, venue, capacity, status, "talk", "{sp-1,sp-2}", "{}", created, created}
}

func TestSessionRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantIDs []string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM sessions\s+WHERE event_id = \$1`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(sessionCols).
						AddRow(sessionRow("s-1", "Keynote", "Hall A", start, end, 200, "confirmed")...).
						AddRow(sessionRow("s-2", "Workshop", "Hall B", start, end, 50, "cancelled")...))
			},
			wantIDs: []string{"s-1", "s-2"},
		},
		{
			name: "empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM sessions`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(sessionCols))
			},
			wantIDs: []string{},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM sessions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSessionRepository(db)
			got, err := repo.ListByEventID(ctx, "ev-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, s := range got {
				ids[i] = s.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_ListByEventID_ScansFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	paris := time.FixedZone("CET", 3600)
	start := time.Date(2025, 3, 1, 11, 0, 0, 0, paris)
	mock.ExpectQuery(`SELECT .+ FROM sessions`).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(sessionRow("s-1", "Keynote", "Hall A", start, start.Add(time.Hour), 200, "tentative")...))

	got, err := NewSessionRepository(db).ListByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "Hall A", s.Venue)
	assert.Equal(t, 200, s.Capacity)
	assert.Equal(t, domain.StatusTentative, s.Status)
	assert.Equal(t, domain.TypeTalk, s.Type)
	assert.Equal(t, []string{"sp-1", "sp-2"}, s.Speakers)
	assert.Equal(t, []string{}, s.Tags)
	assert.Equal(t, time.UTC, s.StartTime.Location())
	assert.True(t, s.StartTime.Equal(start))
}

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sessions`).
					WithArgs("ev-1", "Keynote", start, start.Add(time.Hour), "Hall A", 200, "confirmed", "keynote",
						pq.Array([]string{"sp-1"}), pq.Array([]string{"ai"}), created, created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sess-uuid-1"))
			},
			wantID: "sess-uuid-1",
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sessions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			s := domain.NewSession("ev-1", "Keynote", "Hall A", start, start.Add(time.Hour), 200,
				domain.StatusConfirmed, domain.TypeKeynote, []string{"sp-1"}, []string{"ai"}, created, created)
			err = NewSessionRepository(db).Create(ctx, s)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, s.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, s.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_Update(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	title := "  Opening  "
	venue := "Hall B"
	status := domain.StatusCancelled

	t.Run("only patched columns are written", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE sessions SET updated_at = NOW(), title = $1, start_time = $2, venue = $3, status = $4`)+`\s+WHERE id = \$5`).
			WithArgs("Opening", start, "Hall B", "cancelled", "s-1").
			WillReturnRows(sqlmock.NewRows(sessionCols).
				AddRow(sessionRow("s-1", "Opening", "Hall B", start, start.Add(time.Hour), 200, "cancelled")...))

		got, err := NewSessionRepository(db).Update(ctx, "s-1", domain.SessionPatch{
			Title: &title, StartTime: &start, Venue: &venue, Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "Opening", got.Title)
		assert.Equal(t, domain.StatusCancelled, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE sessions`).
			WithArgs("Opening", "missing").
			WillReturnError(sql.ErrNoRows)

		_, err = NewSessionRepository(db).Update(ctx, "missing", domain.SessionPatch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE sessions`).WillReturnError(sql.ErrConnDone)

		_, err = NewSessionRepository(db).Update(ctx, "s-1", domain.SessionPatch{Title: &title})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sessions WHERE id = \$1`).
					WithArgs("s-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sessions`).
					WithArgs("s-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sessions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewSessionRepository(db).Delete(ctx, "s-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
