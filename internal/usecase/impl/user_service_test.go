package impl

import (
	"context"
	"testing"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	mockRepo "assetverse/internal/mocks/repository"
	"assetverse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "new@example.com",
		DisplayName: "New User",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, entity.RoleEmployee, user.Role)
			assert.False(t, user.CreatedAt.IsZero())
			user.ID = "generated-id"
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Inserted)
	assert.Equal(t, "generated-id", output.InsertedID)
}

func TestUserService_RegisterUser_ExistingEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "existing@example.com",
		DisplayName: "Existing User",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: "u1", Email: input.Email}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Inserted)
	assert.Equal(t, "user exists", output.Message)
	assert.Empty(t, output.InsertedID)
}

func TestUserService_RegisterUser_LostInsertRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "racer@example.com",
		DisplayName: "Racer",
	}

	// The existence check misses, but a concurrent registration wins the
	// insert and the unique index rejects ours.
	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Inserted)
	assert.Equal(t, "user exists", output.Message)
}

func TestUserService_RegisterUser_LookupError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "broken@example.com",
		DisplayName: "Broken",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestUserService_SearchUsers_CapsLimit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	found := []*entity.User{{ID: "u1"}, {ID: "u2"}}

	fx.userRepo.On("Search", ctx, "ali", int64(6)).Return(found, nil)

	users, err := fx.service.SearchUsers(ctx, "ali")

	require.NoError(t, err)
	assert.Equal(t, found, users)
}

func TestUserService_GetRoleByEmail_Known(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "hr@example.com").
		Return(&entity.User{ID: "u1", Email: "hr@example.com", Role: entity.RoleHR}, nil)

	role, err := fx.service.GetRoleByEmail(ctx, "hr@example.com")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleHR, role)
}

func TestUserService_GetRoleByEmail_UnknownFallsBackToUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	role, err := fx.service.GetRoleByEmail(ctx, "ghost@example.com")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestUserService_UpdateUserRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("UpdateRole", ctx, "u1", entity.RoleAdmin).Return(nil)

	err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{UserID: "u1", Role: "admin"})

	require.NoError(t, err)
}

func TestUserService_UpdateUserRole_TrimsWhitespace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("UpdateRole", ctx, "u1", entity.RoleHR).Return(nil)

	err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{UserID: "u1", Role: "  hr "})

	require.NoError(t, err)
}

func TestUserService_UpdateUserRole_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.UpdateUserRole(context.Background(), &usecase.UpdateUserRoleInput{UserID: "u1", Role: "superadmin"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRole.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_UpdateUserRole_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("UpdateRole", ctx, "missing", entity.RoleEmployee).
		Return(repository.ErrUserNotFound)

	err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{UserID: "missing", Role: "employee"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}
