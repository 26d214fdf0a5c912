package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"eventdesk/internal/domain"
)

// testLogger discards output so tests don't assert on logs.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	sessions  []*domain.Session
	nextID    int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	creates   int
	updates   int
	deletes   int
}

func newFakeSessionRepo(sessions ...*domain.Session) *fakeSessionRepo {
	return &fakeSessionRepo{sessions: sessions, nextID: 1}
}

func (f *fakeSessionRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.EventID == eventID {
			// hand out copies, like a real round trip
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.sessions = append(f.sessions, s.Clone())
	return nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, s := range f.sessions {
		if s.ID == id {
			f.updates++
			f.sessions[i] = patch.Apply(s)
			return f.sessions[i].Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, s := range f.sessions {
		if s.ID == id {
			f.deletes++
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSessionRepo) byID(id string) *domain.Session {
	for _, s := range f.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// fakeEventConfigs returns a fixed config per event id.
type fakeEventConfigs struct {
	configs map[string]*domain.EventConfig
	err     error
}

func (f *fakeEventConfigs) GetEventConfig(ctx context.Context, eventID string) (*domain.EventConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.configs[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

// fakeSpeakers is an in-memory SpeakerDirectory.
type fakeSpeakers struct {
	byID map[string]*domain.Speaker
	err  error
}

func (f *fakeSpeakers) ListByIDs(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Speaker
	for _, id := range ids {
		if sp, ok := f.byID[id]; ok {
			out = append(out, sp)
		}
	}
	return out, nil
}

// fakeGuard records acquisitions and can report the guard as busy.
type fakeGuard struct {
	mu       sync.Mutex
	busy     bool
	acquired []string
	released int
}

func (f *fakeGuard) Acquire(ctx context.Context, eventID string) (func(context.Context) error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return nil, domain.ErrGuardBusy
	}
	f.acquired = append(f.acquired, eventID)
	return func(context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.released++
		return nil
	}, nil
}

// fakeNotifier captures notifications. onSend runs before each one is recorded.
type fakeNotifier struct {
	rescheduled []*domain.ScheduleChangeEmailData
	cancelled   []*domain.ScheduleChangeEmailData
	err         error
	onSend      func()
}

func (f *fakeNotifier) SessionRescheduled(ctx context.Context, data *domain.ScheduleChangeEmailData) error {
	if f.onSend != nil {
		f.onSend()
	}
	f.rescheduled = append(f.rescheduled, data)
	return f.err
}

func (f *fakeNotifier) SessionCancelled(ctx context.Context, data *domain.ScheduleChangeEmailData) error {
	if f.onSend != nil {
		f.onSend()
	}
	f.cancelled = append(f.cancelled, data)
	return f.err
}

func (f *fakeGuard) releases() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released
}
