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

type hrServiceFixtures struct {
	service usecase.HRUsecase
	hrRepo  *mockRepo.MockHRRepository
}

func createTestHRService(t *testing.T) hrServiceFixtures {
	hrRepo := mockRepo.NewMockHRRepository(t)

	service := NewHRService(HRServiceParams{
		HRRepo: hrRepo,
		Logger: newDiscardLogger(),
	})

	return hrServiceFixtures{
		service: service,
		hrRepo:  hrRepo,
	}
}

func TestHRService_RegisterApplication_ForcesRoleAndStatus(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	input := &usecase.RegisterHRInput{
		FullName:    "Jordan Blake",
		Email:       "jordan@corp.example.com",
		CompanyName: "Corp",
		CompanyLogo: "https://corp.example.com/logo.png",
	}

	fx.hrRepo.On("Create", ctx, mock.AnythingOfType("*entity.HRApplication")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*entity.HRApplication)
			assert.Equal(t, entity.RoleHR, application.Role)
			assert.Equal(t, entity.HRStatusPending, application.Status)
			assert.False(t, application.CreatedAt.IsZero())
			application.ID = "app1"
		}).
		Return(nil)

	application, err := fx.service.RegisterApplication(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "app1", application.ID)
	assert.Equal(t, entity.HRStatusPending, application.Status)
}

func TestHRService_Approve_Pending(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	fx.hrRepo.On("TransitionFromPending", ctx, "app1", entity.HRStatusApproved).
		Return(true, nil)

	require.NoError(t, fx.service.Approve(ctx, "app1"))
}

func TestHRService_Reject_Pending(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	fx.hrRepo.On("TransitionFromPending", ctx, "app1", entity.HRStatusRejected).
		Return(true, nil)

	require.NoError(t, fx.service.Reject(ctx, "app1"))
}

func TestHRService_Approve_AlreadyDecided(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	fx.hrRepo.On("TransitionFromPending", ctx, "app1", entity.HRStatusApproved).
		Return(false, nil)
	fx.hrRepo.On("FindByID", ctx, "app1").
		Return(&entity.HRApplication{ID: "app1", Status: entity.HRStatusRejected}, nil)

	err := fx.service.Approve(ctx, "app1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrApplicationAlreadyDecided.ErrorCode(), appErr.ErrorCode())
}

func TestHRService_Approve_NotFound(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	fx.hrRepo.On("TransitionFromPending", ctx, "missing", entity.HRStatusApproved).
		Return(false, nil)
	fx.hrRepo.On("FindByID", ctx, "missing").
		Return(nil, repository.ErrApplicationNotFound)

	err := fx.service.Approve(ctx, "missing")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrApplicationNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestHRService_ListApplications(t *testing.T) {
	fx := createTestHRService(t)

	ctx := context.Background()
	applications := []*entity.HRApplication{{ID: "app1"}, {ID: "app2"}}

	fx.hrRepo.On("List", ctx).Return(applications, nil)

	got, err := fx.service.ListApplications(ctx)

	require.NoError(t, err)
	assert.Equal(t, applications, got)
}
