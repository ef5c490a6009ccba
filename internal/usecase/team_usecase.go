package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
)

// AddTeamMemberInput identifies the user to add to the roster.
type AddTeamMemberInput struct {
	UserID string `json:"userId" validate:"required"`
}

// TeamUsecase defines the interface for team roster operations.
type TeamUsecase interface {
	// AddMember snapshots the referenced user onto the roster. Fails when
	// the roster is full, the user does not exist, or the user already
	// holds a slot, checked in that order.
	AddMember(ctx context.Context, input *AddTeamMemberInput) (*entity.TeamMember, error)

	// ListMembers returns the current roster.
	ListMembers(ctx context.Context) ([]*entity.TeamMember, error)

	// RemoveMember deletes a roster entry by its document id.
	RemoveMember(ctx context.Context, id string) error
}
