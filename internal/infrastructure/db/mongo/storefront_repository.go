package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// ReviewRepository implements ports.ReviewRepository.
type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

// reviewDoc stores the author email under "user".
type reviewDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	User    string             `bson:"user,omitempty"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var docs []reviewDoc
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := make([]*domain.Review, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Review{
			ID:      d.ID.Hex(),
			Name:    d.Name,
			User:    d.User,
			Details: d.Details,
			Rating:  d.Rating,
		})
	}
	return out, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, reviewDoc{
		Name:    review.Name,
		User:    review.User,
		Details: review.Details,
		Rating:  review.Rating,
	})
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return insertedHex(res), nil
}

// BookingRepository implements ports.BookingRepository.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Email  string             `bson:"email"`
	Name   string             `bson:"name"`
	Phone  string             `bson:"phone,omitempty"`
	Date   time.Time          `bson:"date"`
	Guests int                `bson:"guests"`
	Status string             `bson:"status"`
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var docs []bookingDoc
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	out := make([]*domain.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Booking{
			ID:     d.ID.Hex(),
			Email:  d.Email,
			Name:   d.Name,
			Phone:  d.Phone,
			Date:   d.Date.UTC(),
			Guests: d.Guests,
			Status: d.Status,
		})
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, bookingDoc{
		Email:  b.Email,
		Name:   b.Name,
		Phone:  b.Phone,
		Date:   b.Date,
		Guests: b.Guests,
		Status: b.Status,
	})
	if err != nil {
		return "", fmt.Errorf("insert booking: %w", err)
	}
	return insertedHex(res), nil
}

// CartRepository implements ports.CartRepository.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type cartDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	MenuID string             `bson:"menuId"`
	Email  string             `bson:"email"`
	Name   string             `bson:"name"`
	Image  string             `bson:"image"`
	Price  float64            `bson:"price"`
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var docs []cartDoc
	if err := findAll(ctx, r.coll, bson.M{"email": email}, &docs); err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	out := make([]*domain.CartItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.CartItem{
			ID:     d.ID.Hex(),
			MenuID: d.MenuID,
			Email:  d.Email,
			Name:   d.Name,
			Image:  d.Image,
			Price:  d.Price,
		})
	}
	return out, nil
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, cartDoc{
		MenuID: item.MenuID,
		Email:  item.Email,
		Name:   item.Name,
		Image:  item.Image,
		Price:  item.Price,
	})
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	return insertedHex(res), nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete cart items: %w", err)
	}
	return res.DeletedCount, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any, out any) error {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
