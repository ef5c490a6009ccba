package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

// ErrRequestNotFound is returned when an asset request does not exist.
var ErrRequestNotFound = errors.New("asset request not found")

// RequestRepository defines persistence operations for asset requests.
type RequestRepository interface {
	// List returns asset requests, optionally filtered by status.
	// An empty status returns all requests.
	List(ctx context.Context, status entity.RequestStatus) ([]*entity.AssetRequest, error)

	// Create persists a new asset request.
	Create(ctx context.Context, request *entity.AssetRequest) error

	// UpdateStatus sets the status of the request with the given id.
	// Returns ErrRequestNotFound when no document matched.
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error
}
