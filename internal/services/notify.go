package services

import (
	"context"

	"eventdesk/internal/domain"
)

// notifyChange e-mails the speakers of a session whose window or venue moved,
// or which was cancelled. Delivery problems are logged and never returned: the
// write they follow has already been committed.
func (s *sessionService) notifyChange(ctx context.Context, before, after *domain.Session) {
	if s.notifier == nil || s.speakers == nil || after == nil {
		return
	}
	cancelled := !before.IsCancelled() && after.IsCancelled()
	moved := !before.StartTime.Equal(after.StartTime) ||
		!before.EndTime.Equal(after.EndTime) ||
		before.Venue != after.Venue
	if !cancelled && (!moved || after.IsCancelled()) {
		return
	}

	ids := domain.DedupeSpeakers(append(append([]string{}, before.Speakers...), after.Speakers...))
	if len(ids) == 0 {
		return
	}
	speakers, err := s.speakers.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "schedule notification: resolve speakers", "session_id", after.ID, "err", err)
		return
	}

	for _, sp := range speakers {
		if sp.Email == "" {
			continue
		}
		data := &domain.ScheduleChangeEmailData{
			Email:        sp.Email,
			SpeakerName:  sp.FullName,
			SessionTitle: after.Title,
			Venue:        after.Venue,
			OldStart:     before.StartTime,
			OldEnd:       before.EndTime,
			NewStart:     after.StartTime,
			NewEnd:       after.EndTime,
		}
		if cancelled {
			err = s.notifier.SessionCancelled(ctx, data)
		} else {
			err = s.notifier.SessionRescheduled(ctx, data)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "schedule notification failed", "session_id", after.ID, "speaker_id", sp.ID, "err", err)
		}
	}
}
