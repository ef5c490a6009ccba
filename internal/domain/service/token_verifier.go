// Package service defines the interfaces for external collaborators the
// application depends on. Concrete implementations live in internal/infra.
package service

import (
	"context"

	"assetverse/internal/domain/entity"
)

// TokenVerifier validates a bearer ID token with the external identity
// provider and yields the verified principal. Any provider-side rejection
// (expired, malformed, bad signature) must be normalized to the domain
// Unauthorized error; verifier-internal detail never reaches the caller.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*entity.Principal, error)
}
