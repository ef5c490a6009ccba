package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	deliverycontext "assetverse/internal/delivery/context"
	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/domain/service"
	"assetverse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// unknownPlan is recorded when the provider snapshot carries no line item.
const unknownPlan = "unknown"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	checkout    service.CheckoutService
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	Checkout    service.CheckoutService
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		checkout:    params.Checkout,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiateCheckout opens a hosted checkout session. Nothing is persisted
// locally; all session state lives provider-side until confirmation.
func (srv *paymentService) InitiateCheckout(ctx context.Context, input *usecase.InitiateCheckoutInput) (*usecase.InitiateCheckoutOutput, error) {
	session, err := srv.checkout.CreateSession(ctx, input.SenderEmail, input.Plan, input.Price)
	if err != nil {
		return nil, domainerrors.ErrCheckoutFailed.WrapMessage("provider session creation failed")
	}

	output := &usecase.InitiateCheckoutOutput{URL: session.URL}

	// A QR failure never blocks checkout; the URL alone is sufficient.
	if png, err := srv.qrcode.GenerateURL(session.URL); err != nil {
		srv.log(ctx).Warn("Failed to render checkout QR code", slog.Any("error", err))
	} else {
		output.QRCode = base64.StdEncoding.EncodeToString(png)
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.ID),
		slog.String("plan", input.Plan),
	)

	return output, nil
}

// ConfirmPayment retrieves the session snapshot and writes the durable
// payment record only when the provider reports the session paid. The
// write is an upsert keyed by customer email, so repeating the call for
// the same session updates rather than duplicates.
func (srv *paymentService) ConfirmPayment(ctx context.Context, sessionID string) (*usecase.ConfirmPaymentOutput, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrMissingSessionID.WrapMessage("sessionId must not be empty")
	}

	session, err := srv.checkout.GetSession(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.ErrCheckoutFailed.WrapMessage("provider session retrieval failed")
	}

	if session.PaymentStatus != entity.CheckoutPaid {
		return &usecase.ConfirmPaymentOutput{Session: session, Recorded: false}, nil
	}

	plan := session.Plan
	if plan == "" {
		plan = unknownPlan
	}

	record := &entity.PaymentRecord{
		Email:  session.CustomerEmail,
		Plan:   plan,
		Amount: float64(session.AmountTotal) / 100,
		Status: entity.CheckoutPaid,
		PaidAt: time.Now().UTC(),
	}

	if err := srv.paymentRepo.Upsert(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("sessionID", session.ID),
		slog.String("email", record.Email),
		slog.Float64("amount", record.Amount),
	)

	return &usecase.ConfirmPaymentOutput{Session: session, Recorded: true}, nil
}
