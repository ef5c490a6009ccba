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

// hrService implements the HRUsecase interface.
type hrService struct {
	hrRepo repository.HRRepository
	logger *slog.Logger
}

// HRServiceParams holds dependencies for hrService, injected by Fx.
type HRServiceParams struct {
	fx.In

	HRRepo repository.HRRepository
	Logger *slog.Logger
}

// NewHRService is the constructor for hrService.
func NewHRService(params HRServiceParams) usecase.HRUsecase {
	return &hrService{
		hrRepo: params.HRRepo,
		logger: params.Logger,
	}
}

func (srv *hrService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterApplication files a new application. Role and status are forced
// server-side; whatever the caller sent for either is discarded.
func (srv *hrService) RegisterApplication(ctx context.Context, input *usecase.RegisterHRInput) (*entity.HRApplication, error) {
	application := &entity.HRApplication{
		FullName:    input.FullName,
		Email:       input.Email,
		CompanyName: input.CompanyName,
		CompanyLogo: input.CompanyLogo,
		Role:        entity.RoleHR,
		Status:      entity.HRStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.hrRepo.Create(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to create hr application")
	}

	srv.log(ctx).Info("HR application filed",
		slog.String("applicationID", application.ID),
		slog.String("email", application.Email),
	)

	return application, nil
}

// ListApplications returns all applications, newest first.
func (srv *hrService) ListApplications(ctx context.Context) ([]*entity.HRApplication, error) {
	return srv.hrRepo.List(ctx)
}

// Approve moves a pending application to approved.
func (srv *hrService) Approve(ctx context.Context, id string) error {
	return srv.transition(ctx, id, entity.HRStatusApproved)
}

// Reject moves a pending application to rejected.
func (srv *hrService) Reject(ctx context.Context, id string) error {
	return srv.transition(ctx, id, entity.HRStatusRejected)
}

// transition performs the pending-only status change. The pending filter is
// applied atomically in storage; when it misses, the application is either
// absent or already decided, and the two are told apart with a follow-up read.
func (srv *hrService) transition(ctx context.Context, id string, target entity.HRStatus) error {
	ok, err := srv.hrRepo.TransitionFromPending(ctx, id, target)
	if err != nil {
		return errors.Wrap(err, "failed to transition hr application")
	}
	if ok {
		srv.log(ctx).Info("HR application decided", slog.String("applicationID", id), slog.Any("status", target))

		return nil
	}

	if _, err := srv.hrRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domainerrors.ErrApplicationNotFound.WrapMessage("no application with this id")
		}

		return errors.Wrap(err, "failed to load hr application")
	}

	return domainerrors.ErrApplicationAlreadyDecided.WrapMessage("application is not pending")
}
