package service

import (
	"context"
	"fmt"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// ReviewService lists and stores customer reviews.
type ReviewService struct {
	repo ports.ReviewRepository
}

func NewReviewService(repo ports.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Create(ctx context.Context, in ports.ReviewInput) (string, error) {
	id, err := s.repo.Create(ctx, &domain.Review{
		Name:    in.Name,
		User:    in.User,
		Details: in.Details,
		Rating:  in.Rating,
	})
	if err != nil {
		return "", fmt.Errorf("create review: %w", err)
	}
	return id, nil
}

// BookingService lists and stores table reservations. New bookings start
// as pending.
type BookingService struct {
	repo ports.BookingRepository
}

func NewBookingService(repo ports.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.List(ctx)
}

func (s *BookingService) Create(ctx context.Context, in ports.BookingInput) (string, error) {
	id, err := s.repo.Create(ctx, &domain.Booking{
		Email:  in.Email,
		Name:   in.Name,
		Phone:  in.Phone,
		Date:   in.Date.UTC(),
		Guests: in.Guests,
		Status: domain.BookingPending,
	})
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return id, nil
}

// CartService manages the unpaid items of each customer.
type CartService struct {
	repo ports.CartRepository
}

func NewCartService(repo ports.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) List(ctx context.Context, email string) ([]*domain.CartItem, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *CartService) Add(ctx context.Context, in ports.CartItemInput) (string, error) {
	id, err := s.repo.Create(ctx, &domain.CartItem{
		MenuID: in.MenuID,
		Email:  in.Email,
		Name:   in.Name,
		Image:  in.Image,
		Price:  in.Price,
	})
	if err != nil {
		return "", fmt.Errorf("add cart item: %w", err)
	}
	return id, nil
}

func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("remove cart item: %w", err)
	}
	return n, nil
}
