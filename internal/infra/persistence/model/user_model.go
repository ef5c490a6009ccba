// Package model contains the persistence representations of domain
// entities, kept separate so driver types and bson tags never leak into
// the domain layer.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetverse/internal/domain/entity"
)

// UserModel is the users collection document.
type UserModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName"`
	Role        string             `bson:"role"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// ToUserDomain maps the persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:          m.ID.Hex(),
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        entity.Role(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model. A zero ID
// is left unset so the store assigns one on insert.
func FromUserDomain(user *entity.User) (*UserModel, error) {
	m := &UserModel{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role.String(),
		CreatedAt:   user.CreatedAt,
	}

	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
