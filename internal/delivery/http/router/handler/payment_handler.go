package handler

import (
	"log/slog"
	"net/http"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for checkout flow handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// InitiateCheckout handles opening a hosted checkout session.
func (h *PaymentHandler) InitiateCheckout(c echo.Context) error {
	var input *usecase.InitiateCheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.InitiateCheckout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Checkout session created")
}

// confirmPaymentBody carries the session identifier posted back from the
// redirect landing page.
type confirmPaymentBody struct {
	SessionID string `json:"sessionId"`
}

// ConfirmPayment handles the post-redirect confirmation. The session id is
// accepted from the JSON body or the session_id query parameter.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var body confirmPaymentBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = c.QueryParam("session_id")
	}

	output, err := h.uc.ConfirmPayment(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment confirmation processed")
}
