package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// StatsRepository runs the reporting aggregations.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// EstimatedCounts reads collection sizes from metadata rather than scanning.
func (r *StatsRepository) EstimatedCounts(ctx context.Context) (*ports.CollectionCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var counts ports.CollectionCounts
	for _, c := range []struct {
		name string
		dst  *int64
	}{
		{usersCollection, &counts.Users},
		{menuCollection, &counts.MenuItems},
		{paymentsCollection, &counts.Payments},
	} {
		n, err := r.db.Collection(c.name).EstimatedDocumentCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return &counts, nil
}

func (r *StatsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(paymentsCollection).Aggregate(ctx, revenuePipeline())
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

func (r *StatsRepository) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(paymentsCollection).Aggregate(ctx, categoryBreakdownPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate category breakdown: %w", err)
	}
	var rows []struct {
		Category string  `bson:"category"`
		Quantity int64   `bson:"quantity"`
		Revenue  float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode category breakdown: %w", err)
	}

	out := make([]domain.CategoryStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CategoryStat{Category: row.Category, Quantity: row.Quantity, Revenue: row.Revenue})
	}
	return out, nil
}

func (r *StatsRepository) CountPaymentsByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.db.Collection(paymentsCollection).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

func (r *StatsRepository) CountReviewsByUser(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.db.Collection(reviewsCollection).CountDocuments(ctx, bson.M{"user": email})
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// categoryBreakdownPipeline expands every payment into one row per menu item
// id, joins the row with the menu and groups the matches by category.
//
// Ids that are not valid ObjectIDs convert to null and ids without a menu
// item produce an empty join; the second $unwind drops both.
func categoryBreakdownPipeline() mongo.Pipeline {
	toObjectID := bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: "$menuItemIds"},
		{Key: "to", Value: "objectId"},
		{Key: "onError", Value: nil},
		{Key: "onNull", Value: nil},
	}}}

	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "let", Value: bson.D{{Key: "menuItemId", Value: toObjectID}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$_id", "$$menuItemId"}},
				}}}}},
			}},
			{Key: "as", Value: "menuItem"},
		}}},
		{{Key: "$unwind", Value: "$menuItem"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItem.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItem.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}
