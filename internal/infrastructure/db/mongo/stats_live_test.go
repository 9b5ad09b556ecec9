package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// liveDatabase connects to MONGO_TEST_URI and returns a throwaway database
// that is dropped when the test ends. The test is skipped when the variable
// is unset or the server is unreachable.
func liveDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	name := fmt.Sprintf("bistro_test_%d", time.Now().UnixNano())
	client, db, err := Connect(ctx, Config{URI: uri, Database: name, Timeout: 5 * time.Second})
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestStatsRepository_CategoryBreakdown_Live(t *testing.T) {
	db := liveDatabase(t)
	ctx := context.Background()

	m1, m2, m3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	_, err := db.Collection(menuCollection).InsertMany(ctx, []interface{}{
		bson.D{{Key: "_id", Value: m1}, {Key: "name", Value: "Margherita"}, {Key: "category", Value: "Pizza"}, {Key: "price", Value: 10.0}},
		bson.D{{Key: "_id", Value: m2}, {Key: "name", Value: "Diavola"}, {Key: "category", Value: "Pizza"}, {Key: "price", Value: 12.0}},
	})
	if err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	// m3 has no menu document and "not-an-id" cannot be converted.
	_, err = db.Collection(paymentsCollection).InsertOne(ctx, bson.D{
		{Key: "email", Value: "alice@example.com"},
		{Key: "price", Value: 22.0},
		{Key: "transactionId", Value: "txn-1"},
		{Key: "menuItemIds", Value: bson.A{m1.Hex(), m2.Hex(), m3.Hex(), "not-an-id"}},
	})
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	rows, err := NewStatsRepository(db).CategoryBreakdown(ctx)
	if err != nil {
		t.Fatalf("CategoryBreakdown returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %+v", rows)
	}
	if rows[0].Category != "Pizza" || rows[0].Quantity != 2 || rows[0].Revenue != 22 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestStatsRepository_CategoryBreakdown_LiveEmpty(t *testing.T) {
	db := liveDatabase(t)

	rows, err := NewStatsRepository(db).CategoryBreakdown(context.Background())
	if err != nil {
		t.Fatalf("CategoryBreakdown returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}
