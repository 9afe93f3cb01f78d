package listingservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Listing, error)
	FindByStudentID(ctx context.Context, studentID int) ([]domain.Listing, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Listing, error)
}

type Service struct {
	listingRepo ListingRepo
}

func New(listingRepo ListingRepo) *Service {
	return &Service{
		listingRepo: listingRepo,
	}
}

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotModeratable  = errors.New("listing already moderated")
)

// Create submits a listing for moderation. It stays PENDING and invisible
// to buyers until an admin approves it.
func (s *Service) Create(ctx context.Context, studentID int, title, description string, priceCents int64) (*domain.Listing, error) {
	if title == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if priceCents <= 0 {
		return nil, domain.NewValidationError("price_cents", "must be positive")
	}

	listing := &domain.Listing{
		StudentID:   studentID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
		Status:      domain.ListingPending,
		CreatedAt:   time.Now(),
	}
	created, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		zap.L().Error("can't create listing", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetApproved is the public catalog view.
func (s *Service) GetApproved(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.listingRepo.FindByStatus(ctx, domain.ListingApproved)
	if err != nil {
		zap.L().Error("can't get listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (s *Service) GetPending(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.listingRepo.FindByStatus(ctx, domain.ListingPending)
	if err != nil {
		zap.L().Error("can't get listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (s *Service) GetByStudent(ctx context.Context, studentID int) ([]domain.Listing, error) {
	listings, err := s.listingRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		zap.L().Error("can't get listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Moderate settles a PENDING listing one way. Moderation is one-shot: an
// approved or rejected listing cannot be re-moderated.
func (s *Service) Moderate(ctx context.Context, id int, approve bool) (*domain.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.Status != domain.ListingPending {
		return nil, ErrNotModeratable
	}

	status := domain.ListingRejected
	if approve {
		status = domain.ListingApproved
	}
	updated, err := s.listingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("can't moderate listing", zap.Error(err))
		return nil, err
	}
	zap.L().Info("listing moderated", zap.Int("listing_id", id), zap.String("status", status))
	return updated, nil
}
