package repository

import (
	"context"
	"errors"

	"assetverse/internal/domain/entity"
)

// ErrAssetNotFound is returned when an asset document does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// UpdateResult reports the outcome of a mutate-by-id operation for
// endpoints whose external contract exposes raw match counts.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// AssetRepository defines persistence operations for inventory assets.
type AssetRepository interface {
	// List returns all assets sorted by creation time descending.
	List(ctx context.Context) ([]*entity.Asset, error)

	// Create persists a new asset.
	Create(ctx context.Context, asset *entity.Asset) error

	// UpdateQuantity overwrites the quantity field. A missing id is not an
	// error; the zero-matched result is reported to the caller as-is.
	UpdateQuantity(ctx context.Context, id string, quantity int64) (*UpdateResult, error)

	// Delete removes an asset by id. Returns ErrAssetNotFound when nothing
	// was deleted.
	Delete(ctx context.Context, id string) error
}
