// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "assetverse/internal/delivery/context"
	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchResultLimit caps user search responses.
const searchResultLimit = 6

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a user with the employee role. Registration is
// idempotent by email: the existence check is the fast path, and the unique
// index on email backstops the check-then-insert race. A duplicate-key
// insert is reported the same way as a found record.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if existing != nil {
		return &usecase.RegisterUserOutput{Message: "user exists", Inserted: false}, nil
	}

	user := &entity.User{
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        entity.RoleEmployee,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.ErrUserAlreadyExists.ErrorCode() {
			// Lost the race to a concurrent registration for the same email.
			return &usecase.RegisterUserOutput{Message: "user exists", Inserted: false}, nil
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", input.Email), slog.String("userID", user.ID))

	return &usecase.RegisterUserOutput{InsertedID: user.ID, Inserted: true}, nil
}

// SearchUsers returns up to six matching users, newest first.
func (srv *userService) SearchUsers(ctx context.Context, searchText string) ([]*entity.User, error) {
	users, err := srv.userRepo.Search(ctx, searchText, searchResultLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// GetRoleByEmail returns the stored role, falling back to "user" when no
// record exists for the email.
func (srv *userService) GetRoleByEmail(ctx context.Context, email string) (entity.Role, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return entity.RoleUser, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find user role")
	}

	return user.Role, nil
}

// UpdateUserRole sets a user's role to an exact, trimmed role value.
func (srv *userService) UpdateUserRole(ctx context.Context, input *usecase.UpdateUserRoleInput) error {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return domainerrors.ErrInvalidRole.WrapMessage("role must be one of user, employee, hr, admin")
	}

	if err := srv.userRepo.UpdateRole(ctx, input.UserID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no user with this id")
		}

		return errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role updated", slog.String("userID", input.UserID), slog.Any("role", role))

	return nil
}
