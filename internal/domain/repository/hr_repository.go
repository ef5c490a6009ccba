package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

// ErrApplicationNotFound is returned when an HR application does not exist.
var ErrApplicationNotFound = errors.New("hr application not found")

// HRRepository defines persistence operations for HR applications.
type HRRepository interface {
	// Create persists a new HR application.
	Create(ctx context.Context, application *entity.HRApplication) error

	// List returns all HR applications sorted by creation time descending.
	List(ctx context.Context) ([]*entity.HRApplication, error)

	// FindByID retrieves a single application by id.
	FindByID(ctx context.Context, id string) (*entity.HRApplication, error)

	// TransitionFromPending moves a still-pending application to the target
	// status. The status filter is part of the update so the transition is
	// atomic per document; it returns false when the application was not in
	// the pending state at update time (or does not exist).
	TransitionFromPending(ctx context.Context, id string, target entity.HRStatus) (bool, error)
}
