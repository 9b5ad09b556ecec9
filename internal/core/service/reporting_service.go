package service

import (
	"context"
	"fmt"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// ReportingService computes the read-only dashboard statistics.
type ReportingService struct {
	stats ports.StatsRepository
}

func NewReportingService(stats ports.StatsRepository) *ReportingService {
	return &ReportingService{stats: stats}
}

// Summary returns estimated collection sizes and the revenue over all
// payments.
func (s *ReportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	counts, err := s.stats.EstimatedCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	revenue, err := s.stats.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: revenue: %w", err)
	}
	return &domain.Summary{
		Users:     counts.Users,
		MenuItems: counts.MenuItems,
		Orders:    counts.Payments,
		Revenue:   revenue,
	}, nil
}

// CategoryBreakdown returns sold quantity and revenue per menu category.
// Categories without sales are absent.
func (s *ReportingService) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	rows, err := s.stats.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	if rows == nil {
		rows = []domain.CategoryStat{}
	}
	return rows, nil
}

// UserStats counts the payments and reviews of a single customer.
func (s *ReportingService) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	orders, err := s.stats.CountPaymentsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user stats: orders: %w", err)
	}
	reviews, err := s.stats.CountReviewsByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user stats: reviews: %w", err)
	}
	return &domain.UserStats{Orders: orders, Reviews: reviews}, nil
}
