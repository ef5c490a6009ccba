package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

// ErrPaymentNotFound is returned when no payment record exists for an email.
var ErrPaymentNotFound = errors.New("payment record not found")

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	// Upsert writes the record keyed by email: a second confirmation of the
	// same customer overwrites the existing record instead of duplicating it.
	Upsert(ctx context.Context, record *entity.PaymentRecord) error

	// FindByEmail retrieves the current record for a customer email.
	// Returns ErrPaymentNotFound when none exists.
	FindByEmail(ctx context.Context, email string) (*entity.PaymentRecord, error)
}
