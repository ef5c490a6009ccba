package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetverse/internal/domain/entity"
)

// TeamRosterModel is the singleton team_roster document. Members live as
// an embedded array so the cap and membership checks ride a single guarded
// update on this one document.
type TeamRosterModel struct {
	ID      string            `bson:"_id"`
	Members []TeamMemberModel `bson:"members"`
}

// TeamMemberModel is a member snapshot embedded in the roster document.
type TeamMemberModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName"`
	Role        string             `bson:"role"`
	AddedAt     time.Time          `bson:"addedAt"`
}

func ToTeamMemberDomain(m *TeamMemberModel) *entity.TeamMember {
	return &entity.TeamMember{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        entity.Role(m.Role),
		AddedAt:     m.AddedAt,
	}
}

func FromTeamMemberDomain(member *entity.TeamMember) (*TeamMemberModel, error) {
	m := &TeamMemberModel{
		UserID:      member.UserID,
		Email:       member.Email,
		DisplayName: member.DisplayName,
		Role:        member.Role.String(),
		AddedAt:     member.AddedAt,
	}

	if member.ID != "" {
		oid, err := primitive.ObjectIDFromHex(member.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
