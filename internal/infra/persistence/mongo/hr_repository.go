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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hrRepository implements repository.HRRepository on the hr_applications collection.
type hrRepository struct {
	coll *mongo.Collection
}

// NewHRRepository is the constructor for hrRepository.
func NewHRRepository(db *mongo.Database) repository.HRRepository {
	return &hrRepository{coll: db.Collection(collHR)}
}

// Create persists a new HR application.
func (repo *hrRepository) Create(ctx context.Context, application *entity.HRApplication) error {
	applicationM, err := model.FromHRApplicationDomain(application)
	if err != nil {
		return errors.Wrap(err, "invalid application id")
	}

	result, err := repo.coll.InsertOne(ctx, applicationM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create hr application")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		application.ID = oid.Hex()
	}

	return nil
}

// List returns all HR applications, newest first.
func (repo *hrRepository) List(ctx context.Context) ([]*entity.HRApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hr applications")
	}
	defer cursor.Close(ctx)

	var applicationModels []model.HRApplicationModel
	if err := cursor.All(ctx, &applicationModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode hr applications")
	}

	applications := make([]*entity.HRApplication, 0, len(applicationModels))
	for i := range applicationModels {
		applications = append(applications, model.ToHRApplicationDomain(&applicationModels[i]))
	}

	return applications, nil
}

// FindByID retrieves a single application by id.
func (repo *hrRepository) FindByID(ctx context.Context, id string) (*entity.HRApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrApplicationNotFound
	}

	var applicationM model.HRApplicationModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&applicationM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find hr application")
	}

	return model.ToHRApplicationDomain(&applicationM), nil
}

// TransitionFromPending moves a pending application to the target status.
// The pending filter is part of the update document, so two concurrent
// decisions on the same application cannot both succeed.
func (repo *hrRepository) TransitionFromPending(ctx context.Context, id string, target entity.HRStatus) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": oid, "status": string(entity.HRStatusPending)}
	result, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": string(target)}})
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to update hr application status")
	}

	return result.MatchedCount > 0, nil
}
