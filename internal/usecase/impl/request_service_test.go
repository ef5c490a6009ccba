package impl

import (
	"context"
	"testing"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	mockRepo "assetverse/internal/mocks/repository"
	"assetverse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)

	service := NewRequestService(RequestServiceParams{
		RequestRepo: requestRepo,
		Logger:      newDiscardLogger(),
	})

	return requestServiceFixtures{
		service:     service,
		requestRepo: requestRepo,
	}
}

func TestRequestService_CreateRequest_ForcesPendingStatus(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	input := &usecase.CreateRequestInput{
		AssetID:        "a1",
		AssetName:      "Laptop",
		RequesterEmail: "emp@example.com",
		RequesterName:  "Emp",
		Note:           "need for onboarding",
	}

	fx.requestRepo.On("Create", ctx, mock.AnythingOfType("*entity.AssetRequest")).
		Run(func(args mock.Arguments) {
			request := args.Get(1).(*entity.AssetRequest)
			assert.Equal(t, entity.RequestStatusPending, request.RequestStatus)
			assert.False(t, request.RequestDate.IsZero())
			request.ID = "r1"
		}).
		Return(nil)

	request, err := fx.service.CreateRequest(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "r1", request.ID)
	assert.Equal(t, entity.RequestStatusPending, request.RequestStatus)
}

func TestRequestService_ListRequests_NoFilter(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	all := []*entity.AssetRequest{{ID: "r1"}, {ID: "r2"}}

	fx.requestRepo.On("List", ctx, entity.RequestStatus("")).Return(all, nil)

	requests, err := fx.service.ListRequests(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, all, requests)
}

func TestRequestService_ListRequests_KnownFilter(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	pending := []*entity.AssetRequest{{ID: "r1", RequestStatus: entity.RequestStatusPending}}

	fx.requestRepo.On("List", ctx, entity.RequestStatusPending).Return(pending, nil)

	requests, err := fx.service.ListRequests(ctx, "pending")

	require.NoError(t, err)
	assert.Equal(t, pending, requests)
}

func TestRequestService_ListRequests_UnknownFilter(t *testing.T) {
	fx := createTestRequestService(t)

	requests, err := fx.service.ListRequests(context.Background(), "archived")

	require.Error(t, err)
	assert.Nil(t, requests)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRequestStatus.ErrorCode(), appErr.ErrorCode())
}

func TestRequestService_UpdateRequestStatus_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	fx.requestRepo.On("UpdateStatus", ctx, "r1", entity.RequestStatusDelivered).Return(nil)

	err := fx.service.UpdateRequestStatus(ctx, &usecase.UpdateRequestStatusInput{
		RequestID:     "r1",
		RequestStatus: "delivered",
	})

	require.NoError(t, err)
}

func TestRequestService_UpdateRequestStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestRequestService(t)

	err := fx.service.UpdateRequestStatus(context.Background(), &usecase.UpdateRequestStatusInput{
		RequestID:     "r1",
		RequestStatus: "cancelled",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRequestStatus.ErrorCode(), appErr.ErrorCode())
	fx.requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_UpdateRequestStatus_NotFound(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	fx.requestRepo.On("UpdateStatus", ctx, "missing", entity.RequestStatusApproved).
		Return(repository.ErrRequestNotFound)

	err := fx.service.UpdateRequestStatus(ctx, &usecase.UpdateRequestStatusInput{
		RequestID:     "missing",
		RequestStatus: "approved",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRequestNotFound.ErrorCode(), appErr.ErrorCode())
}
