package domain

import "context"

// TokenVerifier verifies a bearer token issued by the hosted auth provider and
// returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

type actorKey struct{}

// WithActor returns a context carrying the user ID of the caller changing the schedule.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the caller's user ID, or false for contexts that
// never passed authentication (background jobs, tests).
func ActorFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorKey{}).(string)
	return id, ok && id != ""
}
