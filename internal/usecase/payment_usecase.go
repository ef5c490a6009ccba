package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
)

// InitiateCheckoutInput defines the data to open a hosted checkout session.
type InitiateCheckoutInput struct {
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Plan        string `json:"plan" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
}

// InitiateCheckoutOutput carries the provider's hosted checkout URL plus a
// QR rendering of it for point-of-sale display.
type InitiateCheckoutOutput struct {
	URL    string `json:"url"`
	QRCode string `json:"qrCode,omitempty"` // base64-encoded PNG
}

// ConfirmPaymentOutput returns the provider session snapshot and whether a
// durable payment record was written.
type ConfirmPaymentOutput struct {
	Session  *entity.CheckoutSession `json:"session"`
	Recorded bool                    `json:"recorded"`
}

// PaymentUsecase defines the interface for the checkout flow.
type PaymentUsecase interface {
	// InitiateCheckout opens a provider session; nothing is persisted
	// locally at this step.
	InitiateCheckout(ctx context.Context, input *InitiateCheckoutInput) (*InitiateCheckoutOutput, error)

	// ConfirmPayment retrieves the session and, only when the provider
	// reports it paid, upserts the payment record keyed by customer email.
	// This is client-invoked on the redirect landing page; a client that
	// never lands there leaves a real charge unconfirmed.
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentOutput, error)
}
