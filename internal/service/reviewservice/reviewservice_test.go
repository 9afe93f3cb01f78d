package reviewservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
)

type mocks struct {
	reviewRepo *MockReviewRepo
	orderRepo  *MockOrderRepo
	hireRepo   *MockHireRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		reviewRepo: NewMockReviewRepo(ctrl),
		orderRepo:  NewMockOrderRepo(ctrl),
		hireRepo:   NewMockHireRepo(ctrl),
	}
	return New(m.reviewRepo, m.orderRepo, m.hireRepo), m
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	completed := &domain.Order{ID: 4, HireRequestID: 3, BuyerID: 1, StudentID: 2, Status: lifecycle.OrderCompleted}

	tests := []struct {
		name    string
		buyerID int
		rating  int
		setup   func(m *mocks)
		wantErr error
	}{
		{
			name:    "buyer reviews completed order",
			buyerID: 1,
			rating:  5,
			setup: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(ctx, 4).Return(completed, nil)
				m.reviewRepo.EXPECT().FindByOrderID(ctx, 4).Return(nil, nil)
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(&domain.HireRequest{ID: 3, ListingID: 7}, nil)
				m.reviewRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						assert.Equal(t, 7, r.ListingID)
						assert.Equal(t, 5, r.Rating)
						return r, nil
					})
			},
		},
		{
			name:    "one review per order",
			buyerID: 1,
			rating:  4,
			setup: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(ctx, 4).Return(completed, nil)
				m.reviewRepo.EXPECT().FindByOrderID(ctx, 4).Return(&domain.Review{ID: 1}, nil)
			},
			wantErr: ErrAlreadyReviewed,
		},
		{
			name:    "only completed orders",
			buyerID: 1,
			rating:  4,
			setup: func(m *mocks) {
				delivered := *completed
				delivered.Status = lifecycle.OrderDelivered
				m.orderRepo.EXPECT().FindByID(ctx, 4).Return(&delivered, nil)
			},
			wantErr: ErrOrderNotCompleted,
		},
		{
			name:    "student cannot review",
			buyerID: 2,
			rating:  4,
			setup: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(ctx, 4).Return(completed, nil)
			},
			wantErr: ErrNotOrderBuyer,
		},
		{
			name:    "order not found",
			buyerID: 1,
			rating:  4,
			setup: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(ctx, 4).Return(nil, nil)
			},
			wantErr: ErrOrderNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.setup(m)

			review, err := svc.Create(ctx, tt.buyerID, 4, tt.rating, "great work")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, review)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.rating, review.Rating)
		})
	}
}

func TestCreateRatingBounds(t *testing.T) {
	svc, _ := NewMock(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), 1, 4, rating, "")
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "rating", vErr.Field)
	}
}

func TestGetByListing(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	want := []domain.Review{{ID: 1, Rating: 5}, {ID: 2, Rating: 3}}
	m.reviewRepo.EXPECT().FindByListingID(ctx, 7).Return(want, nil)

	got, err := svc.GetByListing(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
