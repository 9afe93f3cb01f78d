package reviewservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByOrderID(ctx context.Context, orderID int) (*domain.Review, error)
	FindByListingID(ctx context.Context, listingID int) ([]domain.Review, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
}

type HireRepo interface {
	FindByID(ctx context.Context, id int) (*domain.HireRequest, error)
}

type Service struct {
	reviewRepo ReviewRepo
	orderRepo  OrderRepo
	hireRepo   HireRepo
}

func New(reviewRepo ReviewRepo, orderRepo OrderRepo, hireRepo HireRepo) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		hireRepo:   hireRepo,
	}
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotCompleted = errors.New("order not completed")
	ErrNotOrderBuyer     = errors.New("only the buyer may review")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
)

// Create leaves the buyer's one review for a completed order. The review is
// pinned to the listing so the catalog can aggregate ratings.
func (s *Service) Create(ctx context.Context, buyerID, orderID, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.NewValidationError("rating", "must be between 1 and 5")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.BuyerID != buyerID {
		return nil, ErrNotOrderBuyer
	}
	if order.Status != lifecycle.OrderCompleted {
		return nil, ErrOrderNotCompleted
	}

	existing, err := s.reviewRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	hire, err := s.hireRepo.FindByID(ctx, order.HireRequestID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		OrderID:   order.ID,
		ListingID: hire.ListingID,
		BuyerID:   buyerID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByListing(ctx context.Context, listingID int) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.FindByListingID(ctx, listingID)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}
