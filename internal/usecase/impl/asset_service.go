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

// assetService implements the AssetUsecase interface.
type assetService struct {
	assetRepo repository.AssetRepository
	logger    *slog.Logger
}

// AssetServiceParams holds dependencies for assetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	AssetRepo repository.AssetRepository
	Logger    *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		assetRepo: params.AssetRepo,
		logger:    params.Logger,
	}
}

func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAssets returns all assets, newest first.
func (srv *assetService) ListAssets(ctx context.Context) ([]*entity.Asset, error) {
	return srv.assetRepo.List(ctx)
}

// CreateAsset persists a new asset; creation time is server-assigned.
func (srv *assetService) CreateAsset(ctx context.Context, input *usecase.CreateAssetInput) (*entity.Asset, error) {
	asset := &entity.Asset{
		ProductName: input.ProductName,
		ProductType: input.ProductType,
		Quantity:    input.Quantity,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.assetRepo.Create(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to create asset")
	}

	srv.log(ctx).Info("Asset created", slog.String("assetID", asset.ID), slog.String("productName", asset.ProductName))

	return asset, nil
}

// AdjustQuantity overwrites the quantity and reports the raw counts.
func (srv *assetService) AdjustQuantity(ctx context.Context, input *usecase.AdjustQuantityInput) (*repository.UpdateResult, error) {
	result, err := srv.assetRepo.UpdateQuantity(ctx, input.AssetID, input.Quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust asset quantity")
	}

	return result, nil
}

// DeleteAsset removes an asset by id.
func (srv *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := srv.assetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return domainerrors.ErrAssetNotFound.WrapMessage("no asset with this id")
		}

		return errors.Wrap(err, "failed to delete asset")
	}

	srv.log(ctx).Info("Asset deleted", slog.String("assetID", id))

	return nil
}
