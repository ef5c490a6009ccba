package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/domain/entity"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPaymentUsecase struct {
	mock.Mock
}

func (m *mockPaymentUsecase) InitiateCheckout(ctx context.Context, input *usecase.InitiateCheckoutInput) (*usecase.InitiateCheckoutOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.InitiateCheckoutOutput), args.Error(1)
}

func (m *mockPaymentUsecase) ConfirmPayment(ctx context.Context, sessionID string) (*usecase.ConfirmPaymentOutput, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ConfirmPaymentOutput), args.Error(1)
}

func newPaymentTestContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(http.MethodPost, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_ConfirmPayment_SessionIDFromBody(t *testing.T) {
	uc := &mockPaymentUsecase{}
	uc.Test(t)
	t.Cleanup(func() { uc.AssertExpectations(t) })
	h := NewPaymentHandler(uc, newTestLogger())

	output := &usecase.ConfirmPaymentOutput{
		Session:  &entity.CheckoutSession{ID: "cs_1", PaymentStatus: entity.CheckoutPaid},
		Recorded: true,
	}
	uc.On("ConfirmPayment", mock.Anything, "cs_1").Return(output, nil)

	c, rec := newPaymentTestContext(t, "/confirm-payment", `{"sessionId":"cs_1"}`)

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestPaymentHandler_ConfirmPayment_SessionIDFromQuery(t *testing.T) {
	uc := &mockPaymentUsecase{}
	uc.Test(t)
	t.Cleanup(func() { uc.AssertExpectations(t) })
	h := NewPaymentHandler(uc, newTestLogger())

	output := &usecase.ConfirmPaymentOutput{
		Session:  &entity.CheckoutSession{ID: "cs_2", PaymentStatus: "unpaid"},
		Recorded: false,
	}
	uc.On("ConfirmPayment", mock.Anything, "cs_2").Return(output, nil)

	c, rec := newPaymentTestContext(t, "/confirm-payment?session_id=cs_2", "")

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
