// Package stripe implements the checkout provider adapter using Stripe
// hosted Checkout Sessions.
package stripe

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"assetverse/config"
	"assetverse/internal/domain/entity"
	"assetverse/internal/domain/service"
)

const defaultCurrency = "usd"

type checkoutService struct {
	api             *client.API
	redirectBaseURL string
	currency        string
}

// NewCheckoutService creates a Stripe-backed checkout service with its own
// API client; no package-global key is set.
func NewCheckoutService(cfg *config.Config) (service.CheckoutService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe configuration is missing")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	currency := cfg.Stripe.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &checkoutService{
		api:             api,
		redirectBaseURL: cfg.Stripe.RedirectBaseURL,
		currency:        currency,
	}, nil
}

// CreateSession opens a hosted checkout session for a single line item
// named after the plan. price arrives in major units and is converted to
// the provider's minor units.
func (s *checkoutService) CreateSession(ctx context.Context, customerEmail, plan string, price int64) (*entity.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(customerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.currency),
					UnitAmount: stripe.Int64(price * 100),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.redirectBaseURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.redirectBaseURL + "/payment/cancel"),
	}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	return toSessionSnapshot(sess), nil
}

// GetSession retrieves a session snapshot with its line items expanded so
// the plan name can be recovered.
func (s *checkoutService) GetSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	sess, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve checkout session")
	}

	return toSessionSnapshot(sess), nil
}

func toSessionSnapshot(sess *stripe.CheckoutSession) *entity.CheckoutSession {
	snapshot := &entity.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
	}

	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		snapshot.CustomerEmail = sess.CustomerDetails.Email
	} else {
		snapshot.CustomerEmail = sess.CustomerEmail
	}

	if sess.LineItems != nil && len(sess.LineItems.Data) > 0 {
		snapshot.Plan = sess.LineItems.Data[0].Description
	}

	return snapshot
}
