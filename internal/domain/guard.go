package domain

import "context"

// CommitGuard serializes check-then-write sequences for one event.
// Release must be called once the write has finished.
type CommitGuard interface {
	Acquire(ctx context.Context, eventID string) (release func(context.Context) error, err error)
}
