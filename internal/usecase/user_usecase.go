// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"required"`
}

// RegisterUserOutput reports the registration result. Registration is
// idempotent by email: a repeated call reports Inserted=false with the
// "user exists" message and leaves storage untouched.
type RegisterUserOutput struct {
	InsertedID string `json:"insertedId,omitempty"`
	Message    string `json:"message,omitempty"`
	Inserted   bool   `json:"inserted"`
}

// UpdateUserRoleInput defines the data for an admin role change.
type UpdateUserRoleInput struct {
	UserID string `json:"-"`
	Role   string `json:"role" validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a user with the employee role, or reports that
	// the email is already registered.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// SearchUsers returns up to six users matching searchText on display
	// name or email, newest first.
	SearchUsers(ctx context.Context, searchText string) ([]*entity.User, error)

	// GetRoleByEmail returns the stored role for an email, or the fallback
	// "user" role when no record exists.
	GetRoleByEmail(ctx context.Context, email string) (entity.Role, error)

	// UpdateUserRole sets a user's role. Caller authorization (admin) is
	// enforced at the delivery layer.
	UpdateUserRole(ctx context.Context, input *UpdateUserRoleInput) error
}
