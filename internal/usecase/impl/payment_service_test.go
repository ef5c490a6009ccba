package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	mockRepo "assetverse/internal/mocks/repository"
	mockSvc "assetverse/internal/mocks/service"
	"assetverse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	paymentRepo *mockRepo.MockPaymentRepository
	checkout    *mockSvc.MockCheckoutService
	qrcode      *mockSvc.MockQRCodeService
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	checkout := mockSvc.NewMockCheckoutService(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewPaymentService(PaymentServiceParams{
		PaymentRepo: paymentRepo,
		Checkout:    checkout,
		QRCode:      qrcode,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		paymentRepo: paymentRepo,
		checkout:    checkout,
		qrcode:      qrcode,
	}
}

func TestPaymentService_InitiateCheckout_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.InitiateCheckoutInput{
		SenderEmail: "buyer@example.com",
		Plan:        "premium",
		Price:       49,
	}
	session := &entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}

	fx.checkout.On("CreateSession", ctx, input.SenderEmail, input.Plan, input.Price).
		Return(session, nil)
	fx.qrcode.On("GenerateURL", session.URL).Return([]byte("png-bytes"), nil)

	output, err := fx.service.InitiateCheckout(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, session.URL, output.URL)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), output.QRCode)
}

func TestPaymentService_InitiateCheckout_QRFailureIsNonBlocking(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.InitiateCheckoutInput{
		SenderEmail: "buyer@example.com",
		Plan:        "premium",
		Price:       49,
	}
	session := &entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}

	fx.checkout.On("CreateSession", ctx, input.SenderEmail, input.Plan, input.Price).
		Return(session, nil)
	fx.qrcode.On("GenerateURL", session.URL).Return(nil, errors.New("content too long"))

	output, err := fx.service.InitiateCheckout(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, session.URL, output.URL)
	assert.Empty(t, output.QRCode)
}

func TestPaymentService_InitiateCheckout_ProviderFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.InitiateCheckoutInput{
		SenderEmail: "buyer@example.com",
		Plan:        "premium",
		Price:       49,
	}

	fx.checkout.On("CreateSession", ctx, input.SenderEmail, input.Plan, input.Price).
		Return(nil, errors.New("provider unreachable"))

	output, err := fx.service.InitiateCheckout(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCheckoutFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ConfirmPayment_MissingSessionID(t *testing.T) {
	fx := createTestPaymentService(t)

	output, err := fx.service.ConfirmPayment(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMissingSessionID.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ConfirmPayment_PaidWritesRecord(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session := &entity.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: entity.CheckoutPaid,
		CustomerEmail: "buyer@example.com",
		AmountTotal:   4900,
		Plan:          "premium",
	}

	fx.checkout.On("GetSession", ctx, "cs_1").Return(session, nil)
	fx.paymentRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.PaymentRecord")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*entity.PaymentRecord)
			assert.Equal(t, "buyer@example.com", record.Email)
			assert.Equal(t, "premium", record.Plan)
			assert.InDelta(t, 49.0, record.Amount, 0.001)
			assert.Equal(t, entity.CheckoutPaid, record.Status)
		}).
		Return(nil)

	output, err := fx.service.ConfirmPayment(ctx, "cs_1")

	require.NoError(t, err)
	assert.True(t, output.Recorded)
	assert.Equal(t, session, output.Session)
}

func TestPaymentService_ConfirmPayment_UnpaidWritesNothing(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session := &entity.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: "unpaid",
		CustomerEmail: "buyer@example.com",
	}

	fx.checkout.On("GetSession", ctx, "cs_1").Return(session, nil)

	output, err := fx.service.ConfirmPayment(ctx, "cs_1")

	require.NoError(t, err)
	assert.False(t, output.Recorded)
	assert.Equal(t, session, output.Session)
	fx.paymentRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPaymentService_ConfirmPayment_MissingPlanFallsBackToUnknown(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session := &entity.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: entity.CheckoutPaid,
		CustomerEmail: "buyer@example.com",
		AmountTotal:   1500,
	}

	fx.checkout.On("GetSession", ctx, "cs_1").Return(session, nil)
	fx.paymentRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.PaymentRecord")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*entity.PaymentRecord)
			assert.Equal(t, "unknown", record.Plan)
		}).
		Return(nil)

	output, err := fx.service.ConfirmPayment(ctx, "cs_1")

	require.NoError(t, err)
	assert.True(t, output.Recorded)
}

func TestPaymentService_ConfirmPayment_ProviderFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.checkout.On("GetSession", ctx, "cs_unknown").
		Return(nil, errors.New("no such session"))

	output, err := fx.service.ConfirmPayment(ctx, "cs_unknown")

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCheckoutFailed.ErrorCode(), appErr.ErrorCode())
}
