package impl

import (
	"context"
	"log/slog"
	"time"

	"assetverse/config"
	deliverycontext "assetverse/internal/delivery/context"
	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// teamService implements the TeamUsecase interface.
type teamService struct {
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
	maxMembers int64
	logger     *slog.Logger
}

// TeamServiceParams holds dependencies for teamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TeamRepo repository.TeamRepository
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	maxMembers := int64(10)
	if params.Config != nil && params.Config.Team != nil && params.Config.Team.MaxMembers > 0 {
		maxMembers = int64(params.Config.Team.MaxMembers)
	}

	return &teamService{
		teamRepo:   params.TeamRepo,
		userRepo:   params.UserRepo,
		maxMembers: maxMembers,
		logger:     params.Logger,
	}
}

func (srv *teamService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddMember snapshots the referenced user onto the roster. The checks run
// in order: capacity first, then user existence, then membership. The
// count here is only the fast path; the repository enforces the cap and
// the membership check atomically in one guarded roster update, so
// concurrent adds cannot overshoot the cap or duplicate a member.
func (srv *teamService) AddMember(ctx context.Context, input *usecase.AddTeamMemberInput) (*entity.TeamMember, error) {
	count, err := srv.teamRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count team members")
	}
	if count >= srv.maxMembers {
		return nil, domainerrors.ErrTeamCapacityExceeded.WrapMessage("team is at capacity")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("referenced user does not exist")
		}

		return nil, errors.Wrap(err, "failed to load referenced user")
	}

	member := &entity.TeamMember{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		AddedAt:     time.Now().UTC(),
	}

	if err := srv.teamRepo.Add(ctx, member, srv.maxMembers); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyTeamMember):
			return nil, domainerrors.ErrAlreadyTeamMember.WrapMessage("user already holds a roster slot")
		case errors.Is(err, repository.ErrTeamFull):
			return nil, domainerrors.ErrTeamCapacityExceeded.WrapMessage("team is at capacity")
		default:
			return nil, errors.Wrap(err, "failed to add team member")
		}
	}

	srv.log(ctx).Info("Team member added", slog.String("userID", user.ID), slog.String("memberID", member.ID))

	return member, nil
}

// ListMembers returns the current roster.
func (srv *teamService) ListMembers(ctx context.Context) ([]*entity.TeamMember, error) {
	return srv.teamRepo.List(ctx)
}

// RemoveMember deletes a roster entry by its document id.
func (srv *teamService) RemoveMember(ctx context.Context, id string) error {
	if err := srv.teamRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return domainerrors.ErrTeamMemberNotFound.WrapMessage("no roster entry with this id")
		}

		return errors.Wrap(err, "failed to remove team member")
	}

	srv.log(ctx).Info("Team member removed", slog.String("memberID", id))

	return nil
}
