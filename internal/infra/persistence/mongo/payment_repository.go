package mongo

import (
	"context"

	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/repository"
	"assetverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// paymentRepository implements repository.PaymentRepository on the payments collection.
type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{coll: db.Collection(collPayments)}
}

// Upsert replaces the record keyed by email, inserting when absent. A
// repeated confirmation of the same paid session updates in place.
func (repo *paymentRepository) Upsert(ctx context.Context, record *entity.PaymentRecord) error {
	recordM := model.FromPaymentDomain(record)

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"email": record.Email}, recordM, opts); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert payment record")
	}

	return nil
}

// FindByEmail retrieves the current record for a customer email.
func (repo *paymentRepository) FindByEmail(ctx context.Context, email string) (*entity.PaymentRecord, error) {
	var recordM model.PaymentModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&recordM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment record")
	}

	return model.ToPaymentDomain(&recordM), nil
}
