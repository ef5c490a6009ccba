package mongo

import (
	"context"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collUsers)}
}

// FindByID retrieves a single user by their document id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new user. The unique index on email is the actual
// uniqueness enforcement; the usecase existence check is only a fast path.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := model.FromUserDomain(user)
	if err != nil {
		return errors.Wrap(err, "invalid user id")
	}

	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// Search matches displayName or email case-insensitively, newest first.
func (repo *userRepository) Search(ctx context.Context, searchText string, limit int64) ([]*entity.User, error) {
	filter := bson.M{}
	if searchText != "" {
		pattern := primitive.Regex{Pattern: escapeRegex(searchText), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"displayName": pattern},
			bson.M{"email": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}
	defer cursor.Close(ctx)

	var userModels []model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, model.ToUserDomain(&userModels[i]))
	}

	return users, nil
}

// UpdateRole sets the role of the user with the given id.
func (repo *userRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role.String()}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user role")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
