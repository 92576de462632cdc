package middleware

import (
	"context"

	"blogcore/internal/models"
)

type ctxKey string

const contextActor ctxKey = "actor"

// WithActor кладёт проверенную личность запроса в контекст.
// Читается один раз в хендлере и дальше передаётся явно.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, contextActor, actor)
}

func ActorFrom(ctx context.Context) (models.Actor, bool) {
	a, ok := ctx.Value(contextActor).(models.Actor)
	return a, ok
}
