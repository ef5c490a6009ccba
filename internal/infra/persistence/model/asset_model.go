package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetverse/internal/domain/entity"
)

// AssetModel is the assets collection document.
type AssetModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductName string             `bson:"productName"`
	ProductType string             `bson:"productType"`
	Quantity    int64              `bson:"quantity"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func ToAssetDomain(m *AssetModel) *entity.Asset {
	return &entity.Asset{
		ID:          m.ID.Hex(),
		ProductName: m.ProductName,
		ProductType: m.ProductType,
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
	}
}

func FromAssetDomain(asset *entity.Asset) (*AssetModel, error) {
	m := &AssetModel{
		ProductName: asset.ProductName,
		ProductType: asset.ProductType,
		Quantity:    asset.Quantity,
		CreatedAt:   asset.CreatedAt,
	}

	if asset.ID != "" {
		oid, err := primitive.ObjectIDFromHex(asset.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
