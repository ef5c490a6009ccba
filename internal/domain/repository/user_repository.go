// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their document id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. The store enforces email uniqueness;
	// a duplicate insert surfaces as a domain conflict error.
	Create(ctx context.Context, user *entity.User) error

	// Search returns up to limit users whose display name or email matches
	// searchText case-insensitively, newest first. An empty searchText
	// matches everyone.
	Search(ctx context.Context, searchText string, limit int64) ([]*entity.User, error)

	// UpdateRole sets the role of the user with the given id.
	// Returns ErrUserNotFound when no document matched.
	UpdateRole(ctx context.Context, id string, role entity.Role) error
}
