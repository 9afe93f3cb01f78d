package disputeservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
	"github.com/collabotree/collabotree/internal/pg"
)

type mocks struct {
	disputeRepo  *MockDisputeRepo
	orderService *MockOrderService
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		disputeRepo:  NewMockDisputeRepo(ctrl),
		orderService: NewMockOrderService(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return New(m.disputeRepo, m.orderService, m.txManager), m
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	open := &domain.Dispute{ID: 5, OrderID: 4, Status: "OPEN"}
	admin := lifecycle.Actor{UserID: 99, Role: lifecycle.RoleAdmin}

	tests := []struct {
		name    string
		outcome string
		setup   func(m *mocks)
		wantErr error
	}{
		{
			name:    "refund cancels the order",
			outcome: OutcomeRefund,
			setup: func(m *mocks) {
				m.disputeRepo.EXPECT().FindByID(ctx, 5).Return(open, nil)
				m.orderService.EXPECT().Transition(ctx, admin, 4, lifecycle.OrderCancelled, "").
					Return(&domain.Order{ID: 4, Status: lifecycle.OrderCancelled}, nil)
				m.disputeRepo.EXPECT().Resolve(ctx, 5, "buyer was right", 99, gomock.Any()).
					Return(&domain.Dispute{ID: 5, Status: "RESOLVED"}, nil)
			},
		},
		{
			name:    "release completes the order",
			outcome: OutcomeRelease,
			setup: func(m *mocks) {
				m.disputeRepo.EXPECT().FindByID(ctx, 5).Return(open, nil)
				m.orderService.EXPECT().Transition(ctx, admin, 4, lifecycle.OrderCompleted, "").
					Return(&domain.Order{ID: 4, Status: lifecycle.OrderCompleted}, nil)
				m.disputeRepo.EXPECT().Resolve(ctx, 5, "buyer was right", 99, gomock.Any()).
					Return(&domain.Dispute{ID: 5, Status: "RESOLVED"}, nil)
			},
		},
		{
			name:    "unknown outcome",
			outcome: "split",
			setup:   func(m *mocks) {},
			wantErr: ErrUnknownOutcome,
		},
		{
			name:    "dispute not found",
			outcome: OutcomeRefund,
			setup: func(m *mocks) {
				m.disputeRepo.EXPECT().FindByID(ctx, 5).Return(nil, nil)
			},
			wantErr: ErrDisputeNotFound,
		},
		{
			name:    "already resolved",
			outcome: OutcomeRefund,
			setup: func(m *mocks) {
				m.disputeRepo.EXPECT().FindByID(ctx, 5).Return(&domain.Dispute{ID: 5, Status: "RESOLVED"}, nil)
			},
			wantErr: ErrDisputeClosed,
		},
		{
			name:    "order transition failure aborts resolution",
			outcome: OutcomeRelease,
			setup: func(m *mocks) {
				m.disputeRepo.EXPECT().FindByID(ctx, 5).Return(open, nil)
				m.orderService.EXPECT().Transition(ctx, admin, 4, lifecycle.OrderCompleted, "").
					Return(nil, lifecycle.ErrInvalidTransition)
			},
			wantErr: lifecycle.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.setup(m)

			dispute, err := svc.Resolve(ctx, 99, 5, tt.outcome, "buyer was right")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dispute)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "RESOLVED", dispute.Status)
		})
	}
}

func TestGetOpen(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	want := []domain.Dispute{{ID: 1, Status: "OPEN"}}
	m.disputeRepo.EXPECT().FindOpen(ctx).Return(want, nil)

	got, err := svc.GetOpen(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
