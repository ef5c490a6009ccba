package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
	"assetverse/internal/domain/repository"
)

// CreateAssetInput defines the data required to create an asset.
type CreateAssetInput struct {
	ProductName string `json:"productName" validate:"required"`
	ProductType string `json:"productType" validate:"required,oneof=returnable non-returnable"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
}

// AdjustQuantityInput defines the data for a quantity patch. Negative
// quantities are rejected at validation.
type AdjustQuantityInput struct {
	AssetID  string `json:"-"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

// AssetUsecase defines the interface for inventory operations.
type AssetUsecase interface {
	// ListAssets returns all assets sorted by creation time descending.
	ListAssets(ctx context.Context) ([]*entity.Asset, error)

	// CreateAsset persists a new asset with a server-assigned creation time.
	CreateAsset(ctx context.Context, input *CreateAssetInput) (*entity.Asset, error)

	// AdjustQuantity overwrites the asset's quantity and reports the raw
	// match/modify counts; a missing id is a zero-matched result, not an
	// error.
	AdjustQuantity(ctx context.Context, input *AdjustQuantityInput) (*repository.UpdateResult, error)

	// DeleteAsset removes an asset by id.
	DeleteAsset(ctx context.Context, id string) error
}
