package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/metrics"
	"eventdesk/internal/schedule"
)

const guardReleaseTimeout = 2 * time.Second

type sessionService struct {
	sessionRepo    domain.SessionRepository
	eventConfigs   domain.EventConfigSource
	speakers       domain.SpeakerDirectory
	guard          domain.CommitGuard
	notifier       domain.ScheduleNotifier
	metrics        *metrics.Metrics
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSessionService returns the scheduling-aware session service. guard, notifier
// and m may be nil.
func NewSessionService(sessionRepo domain.SessionRepository,
	eventConfigs domain.EventConfigSource,
	speakers domain.SpeakerDirectory,
	guard domain.CommitGuard,
	notifier domain.ScheduleNotifier,
	m *metrics.Metrics,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionService{
		sessionRepo:    sessionRepo,
		eventConfigs:   eventConfigs,
		speakers:       speakers,
		guard:          guard,
		notifier:       notifier,
		metrics:        m,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *sessionService) ListSessions(ctx context.Context, eventID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "list", Err: err}
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *sessionService) CreateSession(ctx context.Context, eventID string, draft domain.SessionDraft) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	candidate := draft.ToSession(eventID, time.Now())
	if err := candidate.Validate(); err != nil {
		s.rejected(ctx, eventID, err)
		return nil, err
	}

	release, err := s.acquire(ctx, eventID)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, cfg, err := s.snapshot(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := schedule.Check(candidate, existing, cfg.MaxCapacity); err != nil {
		s.rejected(ctx, eventID, err)
		return nil, err
	}
	s.metrics.ObserveCheck(metrics.CheckOK)

	err = s.sessionRepo.Create(ctx, candidate)
	s.metrics.ObserveMutation("create", err)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "create session failed", "event_id", eventID, "err", err)
		return nil, &domain.RepositoryError{Op: "create", Err: err}
	}
	s.log(ctx).InfoContext(ctx, "session created", "event_id", eventID, "session_id", candidate.ID, "venue", candidate.Venue)
	return candidate, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, eventID, sessionID string, patch domain.SessionPatch) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	release, err := s.acquire(ctx, eventID)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, cfg, err := s.snapshot(ctx, eventID)
	if err != nil {
		return nil, err
	}
	current := findSession(existing, sessionID)
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if patch.IsEmpty() {
		return current, nil
	}

	candidate := patch.Apply(current)
	if err := schedule.Check(candidate, existing, cfg.MaxCapacity); err != nil {
		s.rejected(ctx, eventID, err)
		return nil, err
	}
	s.metrics.ObserveCheck(metrics.CheckOK)

	updated, err := s.sessionRepo.Update(ctx, sessionID, patch)
	s.metrics.ObserveMutation("update", err)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.log(ctx).ErrorContext(ctx, "update session failed", "event_id", eventID, "session_id", sessionID, "err", err)
		return nil, &domain.RepositoryError{Op: "update", Err: err}
	}
	s.log(ctx).InfoContext(ctx, "session updated", "event_id", eventID, "session_id", sessionID)

	// e-mail delivery happens outside the event lock
	release()
	s.notifyChange(ctx, current, updated)
	return updated, nil
}

// CancelSession moves the session to cancelled. Cancelling lifts the session
// out of venue and aggregate capacity checks, so no rule can reject it.
func (s *sessionService) CancelSession(ctx context.Context, eventID, sessionID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "list", Err: err}
	}
	current := findSession(sessions, sessionID)
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.IsCancelled() {
		return current, nil
	}

	status := domain.StatusCancelled
	updated, err := s.sessionRepo.Update(ctx, sessionID, domain.SessionPatch{Status: &status})
	s.metrics.ObserveMutation("cancel", err)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.log(ctx).ErrorContext(ctx, "cancel session failed", "event_id", eventID, "session_id", sessionID, "err", err)
		return nil, &domain.RepositoryError{Op: "update", Err: err}
	}
	s.log(ctx).InfoContext(ctx, "session cancelled", "event_id", eventID, "session_id", sessionID)

	s.notifyChange(ctx, current, updated)
	return updated, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, eventID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return &domain.RepositoryError{Op: "list", Err: err}
	}
	current := findSession(sessions, sessionID)
	if current == nil {
		return domain.ErrNotFound
	}

	err = s.sessionRepo.Delete(ctx, sessionID)
	s.metrics.ObserveMutation("delete", err)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		s.log(ctx).ErrorContext(ctx, "delete session failed", "event_id", eventID, "session_id", sessionID, "err", err)
		return &domain.RepositoryError{Op: "delete", Err: err}
	}
	s.log(ctx).InfoContext(ctx, "session deleted", "event_id", eventID, "session_id", sessionID)

	if !current.IsCancelled() {
		removed := current.Clone()
		removed.Status = domain.StatusCancelled
		s.notifyChange(ctx, current, removed)
	}
	return nil
}

func (s *sessionService) CheckSession(ctx context.Context, eventID, excludeID string, draft domain.SessionDraft) (*domain.ScheduleReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, cfg, err := s.snapshot(ctx, eventID)
	if err != nil {
		return nil, err
	}
	candidate := draft.ToSession(eventID, time.Now())
	candidate.ID = excludeID
	return schedule.Report(candidate, existing, cfg.MaxCapacity), nil
}

func (s *sessionService) Timeline(ctx context.Context, eventID string) (*domain.TimelineView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, cfg, err := s.snapshot(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &domain.TimelineView{
		EventID:  eventID,
		Groups:   schedule.BuildTimelineIn(sessions, cfg.Location()),
		Facets:   schedule.ExtractFacets(sessions, cfg),
		Speakers: s.resolveSpeakers(ctx, sessions),
	}, nil
}

// snapshot fetches the freshest session list and event configuration. Every
// check runs against this snapshot before any write is issued.
func (s *sessionService) snapshot(ctx context.Context, eventID string) ([]*domain.Session, *domain.EventConfig, error) {
	cfg, err := s.eventConfigs.GetEventConfig(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, &domain.RepositoryError{Op: "get event config", Err: err}
	}
	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, nil, &domain.RepositoryError{Op: "list", Err: err}
	}
	return sessions, cfg, nil
}

// acquire takes the event's commit guard. The returned func never fails and only
// releases once, so callers may release early and still defer it; release
// errors are logged since the write has already happened by then.
func (s *sessionService) acquire(ctx context.Context, eventID string) (func(), error) {
	if s.guard == nil {
		return func() {}, nil
	}
	start := time.Now()
	release, err := s.guard.Acquire(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrGuardBusy) {
			s.metrics.ObserveGuard("busy", time.Since(start))
			s.metrics.ObserveCheck(metrics.CheckGuardBusy)
			return nil, domain.ErrGuardBusy
		}
		s.metrics.ObserveGuard("error", time.Since(start))
		return nil, fmt.Errorf("acquire schedule guard: %w", err)
	}
	s.metrics.ObserveGuard("acquired", time.Since(start))
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), guardReleaseTimeout)
			defer cancel()
			if err := release(ctx); err != nil {
				s.logger.WarnContext(ctx, "release schedule guard", "event_id", eventID, "err", err)
			}
		})
	}, nil
}

// rejected records a failed check. A joined error counts once per rule that failed.
func (s *sessionService) rejected(ctx context.Context, eventID string, err error) {
	kinds := rejectionKinds(err)
	for _, k := range kinds {
		s.metrics.ObserveCheck(k)
	}
	s.log(ctx).InfoContext(ctx, "session rejected", "event_id", eventID, "kinds", kinds, "reason", err.Error())
}

// log tags the service logger with the authenticated caller, when there is one.
func (s *sessionService) log(ctx context.Context) *slog.Logger {
	if actor, ok := domain.ActorFromContext(ctx); ok {
		return s.logger.With("actor", actor)
	}
	return s.logger
}

func rejectionKinds(err error) []string {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	kinds := make([]string, 0, len(errs))
	for _, e := range errs {
		var verr *domain.ValidationError
		var conflict *domain.VenueConflictError
		var capErr *domain.CapacityExceededError
		switch {
		case errors.As(e, &verr):
			kinds = append(kinds, metrics.CheckValidation)
		case errors.As(e, &conflict):
			kinds = append(kinds, metrics.CheckVenueConflict)
		case errors.As(e, &capErr) && capErr.Kind == domain.CapacityPerSession:
			kinds = append(kinds, metrics.CheckCapacityPerSession)
		case errors.As(e, &capErr):
			kinds = append(kinds, metrics.CheckCapacityAggregate)
		}
	}
	return kinds
}

func (s *sessionService) resolveSpeakers(ctx context.Context, sessions []*domain.Session) map[string]*domain.Speaker {
	out := make(map[string]*domain.Speaker)
	if s.speakers == nil {
		return out
	}
	var ids []string
	for _, sess := range sessions {
		ids = append(ids, sess.Speakers...)
	}
	ids = domain.DedupeSpeakers(ids)
	if len(ids) == 0 {
		return out
	}
	speakers, err := s.speakers.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve speakers", "count", len(ids), "err", err)
		return out
	}
	for _, sp := range speakers {
		out[sp.ID] = sp
	}
	return out
}

func findSession(sessions []*domain.Session, id string) *domain.Session {
	for _, s := range sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}
