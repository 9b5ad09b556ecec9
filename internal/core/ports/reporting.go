package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// Collection counts returned by EstimatedCounts.
type CollectionCounts struct {
	Users     int64
	MenuItems int64
	Payments  int64
}

// StatsRepository runs read-only aggregations over the store.
type StatsRepository interface {
	EstimatedCounts(ctx context.Context) (*CollectionCounts, error)
	// TotalRevenue sums the price of every payment; 0 when there are none.
	TotalRevenue(ctx context.Context) (float64, error)
	// CategoryBreakdown joins each paid menu item id against the menu and
	// groups the matches by category. Ids without a menu item are dropped.
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
	CountPaymentsByEmail(ctx context.Context, email string) (int64, error)
	CountReviewsByUser(ctx context.Context, email string) (int64, error)
}

type ReportingService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
	UserStats(ctx context.Context, email string) (*domain.UserStats, error)
}
