package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// PaymentRepository implements ports.PaymentRepository.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

// paymentDoc keeps cart and menu item references as hex strings, which is
// what the category breakdown pipeline converts back to ObjectIDs.
type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transactionId"`
	Date          time.Time          `bson:"date"`
	CartIDs       []string           `bson:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds"`
	Status        string             `bson:"status"`
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, paymentDoc{
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		Date:          p.Date,
		CartIDs:       p.CartIDs,
		MenuItemIDs:   p.MenuItemIDs,
		Status:        p.Status,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicatePayment
		}
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedHex(res), nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var docs []paymentDoc
	if err := findAll(ctx, r.coll, bson.M{"email": email}, &docs); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	out := make([]*domain.Payment, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Payment{
			ID:            d.ID.Hex(),
			Email:         d.Email,
			Price:         d.Price,
			TransactionID: d.TransactionID,
			Date:          d.Date.UTC(),
			CartIDs:       d.CartIDs,
			MenuItemIDs:   d.MenuItemIDs,
			Status:        d.Status,
		})
	}
	return out, nil
}

// EnsureIndexes creates the indexes the payments collection relies on.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
