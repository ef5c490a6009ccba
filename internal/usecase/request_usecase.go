package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
)

// CreateRequestInput defines the data required to create an asset request.
// Any caller-supplied status or date is ignored; both are server-assigned.
type CreateRequestInput struct {
	AssetID        string `json:"assetId" validate:"required"`
	AssetName      string `json:"assetName" validate:"required"`
	RequesterEmail string `json:"requesterEmail" validate:"required,email"`
	RequesterName  string `json:"requesterName"`
	Note           string `json:"note"`
}

// UpdateRequestStatusInput defines the data for a status update.
type UpdateRequestStatusInput struct {
	RequestID     string `json:"-"`
	RequestStatus string `json:"requestStatus" validate:"required"`
}

// RequestUsecase defines the interface for asset request operations.
type RequestUsecase interface {
	// ListRequests returns requests, optionally filtered by status.
	ListRequests(ctx context.Context, statusFilter string) ([]*entity.AssetRequest, error)

	// CreateRequest persists a new request with requestDate=now and
	// requestStatus="pending".
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.AssetRequest, error)

	// UpdateRequestStatus sets the request status; the new status must be
	// one of the known values.
	UpdateRequestStatus(ctx context.Context, input *UpdateRequestStatusInput) error
}
