package service

import (
	"context"

	"assetverse/internal/domain/entity"
)

// CheckoutService fronts the hosted payment provider. No state is persisted
// locally at session creation; the durable payment record is written only
// when a confirmation call observes a paid session.
type CheckoutService interface {
	// CreateSession opens a hosted checkout session for a single line item.
	// price is in major currency units; the provider receives minor units.
	CreateSession(ctx context.Context, customerEmail, plan string, price int64) (*entity.CheckoutSession, error)

	// GetSession retrieves an existing session snapshot by id.
	GetSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error)
}
