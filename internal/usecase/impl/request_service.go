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

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRequests returns requests, optionally filtered by a known status.
func (srv *requestService) ListRequests(ctx context.Context, statusFilter string) ([]*entity.AssetRequest, error) {
	status := entity.RequestStatus(statusFilter)
	if statusFilter != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidRequestStatus.WrapMessage("unknown requestStatus filter")
	}

	return srv.requestRepo.List(ctx, status)
}

// CreateRequest persists a new request. The request date and the initial
// "pending" status are server-assigned, overriding any caller input.
func (srv *requestService) CreateRequest(ctx context.Context, input *usecase.CreateRequestInput) (*entity.AssetRequest, error) {
	request := &entity.AssetRequest{
		AssetID:        input.AssetID,
		AssetName:      input.AssetName,
		RequesterEmail: input.RequesterEmail,
		RequesterName:  input.RequesterName,
		Note:           input.Note,
		RequestDate:    time.Now().UTC(),
		RequestStatus:  entity.RequestStatusPending,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create asset request")
	}

	srv.log(ctx).Info("Asset request created",
		slog.String("requestID", request.ID),
		slog.String("requesterEmail", request.RequesterEmail),
	)

	return request, nil
}

// UpdateRequestStatus sets the request status after whitelisting the value.
func (srv *requestService) UpdateRequestStatus(ctx context.Context, input *usecase.UpdateRequestStatusInput) error {
	status := entity.RequestStatus(input.RequestStatus)
	if !status.IsValid() {
		return domainerrors.ErrInvalidRequestStatus.WrapMessage("status must be pending, approved, rejected or delivered")
	}

	if err := srv.requestRepo.UpdateStatus(ctx, input.RequestID, status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound.WrapMessage("no request with this id")
		}

		return errors.Wrap(err, "failed to update request status")
	}

	srv.log(ctx).Info("Request status updated", slog.String("requestID", input.RequestID), slog.Any("status", status))

	return nil
}
