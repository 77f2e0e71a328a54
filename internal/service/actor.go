package service

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a request. The auth
// middleware stores it on the request context after validating the
// token; the audit trail reads it back to record who performed a
// mutation.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

type actorContextKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}
