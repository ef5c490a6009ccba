package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetverse/internal/domain/entity"
)

// HRApplicationModel is the hr_applications collection document.
type HRApplicationModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FullName    string             `bson:"fullName"`
	Email       string             `bson:"email"`
	CompanyName string             `bson:"companyName"`
	CompanyLogo string             `bson:"companyLogo,omitempty"`
	Role        string             `bson:"role"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func ToHRApplicationDomain(m *HRApplicationModel) *entity.HRApplication {
	return &entity.HRApplication{
		ID:          m.ID.Hex(),
		FullName:    m.FullName,
		Email:       m.Email,
		CompanyName: m.CompanyName,
		CompanyLogo: m.CompanyLogo,
		Role:        entity.Role(m.Role),
		Status:      entity.HRStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func FromHRApplicationDomain(application *entity.HRApplication) (*HRApplicationModel, error) {
	m := &HRApplicationModel{
		FullName:    application.FullName,
		Email:       application.Email,
		CompanyName: application.CompanyName,
		CompanyLogo: application.CompanyLogo,
		Role:        application.Role.String(),
		Status:      string(application.Status),
		CreatedAt:   application.CreatedAt,
	}

	if application.ID != "" {
		oid, err := primitive.ObjectIDFromHex(application.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
