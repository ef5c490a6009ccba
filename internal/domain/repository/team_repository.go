package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

var (
	// ErrTeamMemberNotFound is returned when a roster entry does not exist.
	ErrTeamMemberNotFound = errors.New("team member not found")

	// ErrAlreadyTeamMember is returned when the user id already holds a
	// roster slot. The membership check is part of the guarded roster
	// update, so concurrent adds cannot both succeed.
	ErrAlreadyTeamMember = errors.New("user is already a team member")

	// ErrTeamFull is returned when an insert would push the roster past
	// the configured cap.
	ErrTeamFull = errors.New("team member limit reached")
)

// TeamRepository defines persistence operations for the team roster.
type TeamRepository interface {
	// List returns all roster members.
	List(ctx context.Context) ([]*entity.TeamMember, error)

	// Count returns the current roster size.
	Count(ctx context.Context) (int64, error)

	// Add inserts a member snapshot while keeping the roster at or below
	// maxMembers. Implementations must hold the cap invariant under
	// concurrent calls, not just via a pre-insert count.
	Add(ctx context.Context, member *entity.TeamMember, maxMembers int64) error

	// Remove deletes a roster entry by its document id.
	// Returns ErrTeamMemberNotFound when nothing was deleted.
	Remove(ctx context.Context, id string) error
}
