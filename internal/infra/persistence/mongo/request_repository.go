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

// requestRepository implements repository.RequestRepository on the requests collection.
type requestRepository struct {
	coll *mongo.Collection
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *mongo.Database) repository.RequestRepository {
	return &requestRepository{coll: db.Collection(collRequests)}
}

// List returns asset requests, optionally filtered by status, newest first.
func (repo *requestRepository) List(ctx context.Context, status entity.RequestStatus) ([]*entity.AssetRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["requestStatus"] = string(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list asset requests")
	}
	defer cursor.Close(ctx)

	var requestModels []model.RequestModel
	if err := cursor.All(ctx, &requestModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode asset requests")
	}

	requests := make([]*entity.AssetRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, model.ToRequestDomain(&requestModels[i]))
	}

	return requests, nil
}

// Create persists a new asset request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.AssetRequest) error {
	requestM, err := model.FromRequestDomain(request)
	if err != nil {
		return errors.Wrap(err, "invalid request id")
	}

	result, err := repo.coll.InsertOne(ctx, requestM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset request")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid.Hex()
	}

	return nil
}

// UpdateStatus sets the status of the request with the given id.
func (repo *requestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrRequestNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"requestStatus": string(status)}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update request status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}
