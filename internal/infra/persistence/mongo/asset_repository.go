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

// assetRepository implements repository.AssetRepository on the assets collection.
type assetRepository struct {
	coll *mongo.Collection
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *mongo.Database) repository.AssetRepository {
	return &assetRepository{coll: db.Collection(collAssets)}
}

// List returns all assets, newest first.
func (repo *assetRepository) List(ctx context.Context) ([]*entity.Asset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}
	defer cursor.Close(ctx)

	var assetModels []model.AssetModel
	if err := cursor.All(ctx, &assetModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode assets")
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for i := range assetModels {
		assets = append(assets, model.ToAssetDomain(&assetModels[i]))
	}

	return assets, nil
}

// Create persists a new asset.
func (repo *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetM, err := model.FromAssetDomain(asset)
	if err != nil {
		return errors.Wrap(err, "invalid asset id")
	}

	result, err := repo.coll.InsertOne(ctx, assetM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		asset.ID = oid.Hex()
	}

	return nil
}

// UpdateQuantity overwrites the quantity field. A non-existent id yields a
// zero-matched result, not an error; the external contract reports the raw
// counts for this endpoint.
func (repo *assetRepository) UpdateQuantity(ctx context.Context, id string, quantity int64) (*repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &repository.UpdateResult{}, nil
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update asset quantity")
	}

	return &repository.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete removes an asset by id.
func (repo *assetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAssetNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete asset")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}
