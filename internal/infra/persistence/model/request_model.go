package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetverse/internal/domain/entity"
)

// RequestModel is the requests collection document.
type RequestModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	AssetID        string             `bson:"assetId"`
	AssetName      string             `bson:"assetName"`
	RequesterEmail string             `bson:"requesterEmail"`
	RequesterName  string             `bson:"requesterName"`
	Note           string             `bson:"note,omitempty"`
	RequestDate    time.Time          `bson:"requestDate"`
	RequestStatus  string             `bson:"requestStatus"`
}

func ToRequestDomain(m *RequestModel) *entity.AssetRequest {
	return &entity.AssetRequest{
		ID:             m.ID.Hex(),
		AssetID:        m.AssetID,
		AssetName:      m.AssetName,
		RequesterEmail: m.RequesterEmail,
		RequesterName:  m.RequesterName,
		Note:           m.Note,
		RequestDate:    m.RequestDate,
		RequestStatus:  entity.RequestStatus(m.RequestStatus),
	}
}

func FromRequestDomain(request *entity.AssetRequest) (*RequestModel, error) {
	m := &RequestModel{
		AssetID:        request.AssetID,
		AssetName:      request.AssetName,
		RequesterEmail: request.RequesterEmail,
		RequesterName:  request.RequesterName,
		Note:           request.Note,
		RequestDate:    request.RequestDate,
		RequestStatus:  string(request.RequestStatus),
	}

	if request.ID != "" {
		oid, err := primitive.ObjectIDFromHex(request.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
