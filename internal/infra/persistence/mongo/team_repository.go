package mongo

import (
	"context"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// rosterDocID is the _id of the singleton roster document.
const rosterDocID = "roster"

// teamRepository implements repository.TeamRepository on a single roster
// document in the team_roster collection. Members are an embedded array, so
// the cap and membership checks ride one guarded UpdateOne and are atomic
// at the document level.
type teamRepository struct {
	coll *mongo.Collection
}

// NewTeamRepository is the constructor for teamRepository.
func NewTeamRepository(db *mongo.Database) repository.TeamRepository {
	return &teamRepository{coll: db.Collection(collTeamRoster)}
}

// rosterAddFilter matches the roster only while it has room for one more
// member and does not already hold userID. Both conditions sit in the same
// filter as the push, so a racing add that takes the last slot makes this
// filter miss instead of letting the roster overshoot the cap.
func rosterAddFilter(userID string, maxMembers int64) bson.M {
	return bson.M{
		"_id":            rosterDocID,
		"members.userId": bson.M{"$ne": userID},
		"$expr":          bson.M{"$lt": bson.A{bson.M{"$size": "$members"}, maxMembers}},
	}
}

// rosterAddUpdate appends the member snapshot to the roster array.
func rosterAddUpdate(memberM *model.TeamMemberModel) bson.M {
	return bson.M{"$push": bson.M{"members": memberM}}
}

// loadRoster reads the roster document; an absent document reads as an
// empty roster.
func (repo *teamRepository) loadRoster(ctx context.Context) (*model.TeamRosterModel, error) {
	var roster model.TeamRosterModel
	err := repo.coll.FindOne(ctx, bson.M{"_id": rosterDocID}).Decode(&roster)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &model.TeamRosterModel{ID: rosterDocID}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load team roster")
	}

	return &roster, nil
}

// List returns all roster members.
func (repo *teamRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	roster, err := repo.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]*entity.TeamMember, 0, len(roster.Members))
	for i := range roster.Members {
		members = append(members, model.ToTeamMemberDomain(&roster.Members[i]))
	}

	return members, nil
}

// Count returns the current roster size.
func (repo *teamRepository) Count(ctx context.Context) (int64, error) {
	roster, err := repo.loadRoster(ctx)
	if err != nil {
		return 0, err
	}

	return int64(len(roster.Members)), nil
}

// Add appends a member snapshot through the guarded roster update. The
// filter refuses when the user already holds a slot or the roster is at
// maxMembers, and MongoDB applies filter and push atomically on the one
// document, so concurrent adds for the last slot cannot both land and the
// stored count never exceeds the cap, not even transiently.
func (repo *teamRepository) Add(ctx context.Context, member *entity.TeamMember, maxMembers int64) error {
	memberM, err := model.FromTeamMemberDomain(member)
	if err != nil {
		return errors.Wrap(err, "invalid team member id")
	}
	memberM.ID = primitive.NewObjectID()

	// Two attempts: the second covers an unseeded roster document.
	for attempt := 0; attempt < 2; attempt++ {
		result, err := repo.coll.UpdateOne(ctx, rosterAddFilter(member.UserID, maxMembers), rosterAddUpdate(memberM))
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to add team member")
		}
		if result.ModifiedCount == 1 {
			member.ID = memberM.ID.Hex()

			return nil
		}

		roster, err := repo.loadRoster(ctx)
		if err != nil {
			return err
		}
		for i := range roster.Members {
			if roster.Members[i].UserID == member.UserID {
				return repository.ErrAlreadyTeamMember
			}
		}
		if int64(len(roster.Members)) >= maxMembers {
			return repository.ErrTeamFull
		}

		// The guard missed yet the roster has room and no such member:
		// the singleton document is not seeded. Seed and go around once.
		if err := ensureTeamRoster(ctx, repo.coll.Database()); err != nil {
			return err
		}
	}

	return repository.ErrTeamFull
}

// Remove deletes a roster entry by its member id.
func (repo *teamRepository) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrTeamMemberNotFound
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": rosterDocID},
		bson.M{"$pull": bson.M{"members": bson.M{"_id": oid}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove team member")
	}
	if result.ModifiedCount == 0 {
		return repository.ErrTeamMemberNotFound
	}

	return nil
}
