package context

import (
	"context"

	"assetverse/internal/domain/entity"
)

// WithPrincipal returns a new context carrying the verified principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the verified principal from context.Context.
// Returns nil when the request was not authenticated.
func GetPrincipal(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}
