package auth

import (
	"context"

	"orderdesk/internal/entities"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, principal entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func FromContext(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(entities.Principal)
	return principal, ok
}
