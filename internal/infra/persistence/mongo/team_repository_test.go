package mongo

import (
	"testing"

	"assetverse/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// The roster add must carry the cap guard and the membership guard in the
// same filter as the push. With both conditions on the one document, two
// concurrent adds racing for the last free slot cannot both match, and the
// stored roster never exceeds the cap, not even transiently.
func TestRosterAddFilter_GuardsCapAndMembershipAtomically(t *testing.T) {
	filter := rosterAddFilter("u1", 10)

	assert.Equal(t, rosterDocID, filter["_id"])
	assert.Equal(t, bson.M{"$ne": "u1"}, filter["members.userId"])
	assert.Equal(t,
		bson.M{"$lt": bson.A{bson.M{"$size": "$members"}, int64(10)}},
		filter["$expr"],
	)
}

func TestRosterAddFilter_FullRosterCannotMatch(t *testing.T) {
	// A roster holding maxMembers entries fails the $lt size guard for any
	// candidate, so the add degrades to a no-op update instead of a write.
	filter := rosterAddFilter("u2", 1)

	expr, ok := filter["$expr"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$lt": bson.A{bson.M{"$size": "$members"}, int64(1)}}, expr)
}

func TestRosterAddUpdate_PushesSingleMember(t *testing.T) {
	memberM := &model.TeamMemberModel{UserID: "u1", Email: "member@example.com"}

	update := rosterAddUpdate(memberM)

	assert.Equal(t, bson.M{"$push": bson.M{"members": memberM}}, update)
}
