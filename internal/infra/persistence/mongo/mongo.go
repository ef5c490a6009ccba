// Package mongo contains the concrete implementation of the persistence
// layer on top of the official MongoDB driver. One database handle is built
// at process start and injected into every repository.
package mongo

import (
	"context"
	"log/slog"
	"regexp"

	"assetverse/config"
	"assetverse/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	collUsers      = "users"
	collAssets     = "assets"
	collRequests   = "requests"
	collHR         = "hr_applications"
	collTeamRoster = "team_roster"
	collPayments   = "payments"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and manages its lifecycle.
// Unique indexes are ensured on start; they are the storage-side backstop
// for the check-then-insert patterns in the usecases.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure indexes")
			}

			if err := ensureTeamRoster(ctx, db); err != nil {
				return errors.Wrap(err, "failed to seed team roster")
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{collUsers, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		{collPayments, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		{collAssets, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{collHR, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return errors.Wrapf(err, "create index on %s", idx.collection)
		}
	}

	return nil
}

// ensureTeamRoster seeds the singleton roster document so the guarded
// roster updates always have a document to match.
func ensureTeamRoster(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collTeamRoster).UpdateOne(ctx,
		bson.M{"_id": rosterDocID},
		bson.M{"$setOnInsert": bson.M{"members": bson.A{}}},
		options.Update().SetUpsert(true),
	)

	return errors.Wrap(err, "upsert roster document")
}

// isDuplicateKey reports whether err is a unique-index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// escapeRegex neutralizes regex metacharacters in user-supplied search text.
func escapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}
