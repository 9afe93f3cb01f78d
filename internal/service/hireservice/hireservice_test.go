package hireservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
	"github.com/collabotree/collabotree/internal/pg"
)

type mocks struct {
	hireRepo         *MockHireRepo
	listingRepo      *MockListingRepo
	contractRepo     *MockContractRepo
	notificationRepo *MockNotificationRepo
	txManager        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		hireRepo:         NewMockHireRepo(ctrl),
		listingRepo:      NewMockListingRepo(ctrl),
		contractRepo:     NewMockContractRepo(ctrl),
		notificationRepo: NewMockNotificationRepo(ctrl),
		txManager:        pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	svc := New(m.hireRepo, m.listingRepo, m.contractRepo, m.notificationRepo, m.txManager)
	return svc, m
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()
	listing := &domain.Listing{ID: 7, StudentID: 2, Title: "Logo design", PriceCents: 5000, Status: "APPROVED"}

	tests := []struct {
		name    string
		price   int64
		setup   func(m *mocks)
		want    int64
		wantErr error
	}{
		{
			name:  "uses listing price when no price proposed",
			price: 0,
			setup: func(m *mocks) {
				m.listingRepo.EXPECT().FindByID(ctx, 7).Return(listing, nil)
				m.hireRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, h *domain.HireRequest) (*domain.HireRequest, error) {
						assert.Equal(t, int64(5000), h.PriceCents)
						assert.Equal(t, lifecycle.HirePending, h.Status)
						assert.Equal(t, 2, h.StudentID)
						return h, nil
					})
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)
			},
			want: 5000,
		},
		{
			name:  "negotiated price wins",
			price: 4200,
			setup: func(m *mocks) {
				m.listingRepo.EXPECT().FindByID(ctx, 7).Return(listing, nil)
				m.hireRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, h *domain.HireRequest) (*domain.HireRequest, error) {
						assert.Equal(t, int64(4200), h.PriceCents)
						return h, nil
					})
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)
			},
			want: 4200,
		},
		{
			name:  "listing not found",
			price: 0,
			setup: func(m *mocks) {
				m.listingRepo.EXPECT().FindByID(ctx, 7).Return(nil, nil)
			},
			wantErr: ErrListingNotFound,
		},
		{
			name:  "listing not approved",
			price: 0,
			setup: func(m *mocks) {
				pending := *listing
				pending.Status = "PENDING"
				m.listingRepo.EXPECT().FindByID(ctx, 7).Return(&pending, nil)
			},
			wantErr: ErrListingNotApproved,
		},
		{
			name:  "student cannot hire themselves",
			price: 0,
			setup: func(m *mocks) {
				own := *listing
				own.StudentID = 1
				m.listingRepo.EXPECT().FindByID(ctx, 7).Return(&own, nil)
			},
			wantErr: ErrOwnListing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.setup(m)

			hire, err := svc.CreateRequest(ctx, 1, 7, "please", tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, hire)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, hire.PriceCents)
		})
	}
}

func TestCreateRequestRejectsNegativePrice(t *testing.T) {
	svc, _ := NewMock(t)

	_, err := svc.CreateRequest(context.Background(), 1, 7, "", -100)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "price_cents", vErr.Field)
}

func TestTransition(t *testing.T) {
	ctx := context.Background()
	hire := &domain.HireRequest{ID: 3, BuyerID: 1, StudentID: 2, Status: lifecycle.HirePending, Message: "hi"}
	student := lifecycle.Actor{UserID: 2, Role: lifecycle.RoleStudent}
	buyer := lifecycle.Actor{UserID: 1, Role: lifecycle.RoleBuyer}

	tests := []struct {
		name    string
		actor   lifecycle.Actor
		target  string
		setup   func(m *mocks)
		wantErr error
	}{
		{
			name:   "student accepts",
			actor:  student,
			target: lifecycle.HireAccepted,
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)
				m.hireRepo.EXPECT().UpdateStatus(ctx, 3, lifecycle.HireAccepted).
					Return(&domain.HireRequest{ID: 3, Status: lifecycle.HireAccepted}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
						assert.Equal(t, 1, n.UserID)
						return n, nil
					})
			},
		},
		{
			name:   "buyer cannot accept",
			actor:  buyer,
			target: lifecycle.HireAccepted,
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)
			},
			wantErr: lifecycle.ErrForbidden,
		},
		{
			name:   "buyer cancels",
			actor:  buyer,
			target: lifecycle.HireCancelled,
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)
				m.hireRepo.EXPECT().UpdateStatus(ctx, 3, lifecycle.HireCancelled).
					Return(&domain.HireRequest{ID: 3, Status: lifecycle.HireCancelled}, nil)
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
						assert.Equal(t, 2, n.UserID)
						return n, nil
					})
			},
		},
		{
			name:   "rejected request stays rejected",
			actor:  student,
			target: lifecycle.HireAccepted,
			setup: func(m *mocks) {
				rejected := *hire
				rejected.Status = lifecycle.HireRejected
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(&rejected, nil)
			},
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name:   "not found",
			actor:  student,
			target: lifecycle.HireAccepted,
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)
			},
			wantErr: ErrHireRequestNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.setup(m)

			updated, err := svc.Transition(ctx, tt.actor, 3, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
		})
	}
}

func TestCreateContract(t *testing.T) {
	ctx := context.Background()
	accepted := &domain.HireRequest{ID: 3, BuyerID: 1, StudentID: 2, Status: lifecycle.HireAccepted}
	deadline := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name    string
		setup   func(m *mocks)
		wantErr error
	}{
		{
			name: "contract created from accepted request",
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(accepted, nil)
				m.contractRepo.EXPECT().FindByHireRequestID(ctx, 3).Return(nil, nil)
				m.contractRepo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Contract) (*domain.Contract, error) {
						assert.Equal(t, lifecycle.ContractActive, c.Status)
						assert.Equal(t, 3, c.HireRequestID)
						return c, nil
					})
				m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "only one contract per request",
			setup: func(m *mocks) {
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(accepted, nil)
				m.contractRepo.EXPECT().FindByHireRequestID(ctx, 3).Return(&domain.Contract{ID: 9}, nil)
			},
			wantErr: ErrContractExists,
		},
		{
			name: "pending request cannot be contracted",
			setup: func(m *mocks) {
				pending := *accepted
				pending.Status = lifecycle.HirePending
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(&pending, nil)
			},
			wantErr: lifecycle.ErrInvalidTransition,
		},
		{
			name: "another student's request",
			setup: func(m *mocks) {
				other := *accepted
				other.StudentID = 5
				m.hireRepo.EXPECT().FindByID(ctx, 3).Return(&other, nil)
			},
			wantErr: ErrNotRequestStudent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.setup(m)

			contract, err := svc.CreateContract(ctx, 2, 3, "logo in svg", deadline, "Jane D.")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, contract)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, lifecycle.ContractActive, contract.Status)
		})
	}
}

func TestCreateContractValidation(t *testing.T) {
	svc, _ := NewMock(t)

	_, err := svc.CreateContract(context.Background(), 2, 3, "", time.Now(), "Jane D.")
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateContract(context.Background(), 2, 3, "logo", time.Now(), "")
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()
	hire := &domain.HireRequest{ID: 3, BuyerID: 1, StudentID: 2}
	student := lifecycle.Actor{UserID: 2, Role: lifecycle.RoleStudent}

	t.Run("appends note to existing progress", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).
			Return(&domain.Contract{ID: 9, HireRequestID: 3, Progress: "sketches done", Status: lifecycle.ContractActive}, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)
		m.contractRepo.EXPECT().
			UpdateProgress(ctx, 9, "sketches done\nfinal draft sent", lifecycle.ContractActive, (*time.Time)(nil)).
			Return(&domain.Contract{ID: 9, Status: lifecycle.ContractActive}, nil)
		m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)

		updated, err := svc.UpdateProgress(ctx, student, 9, "final draft sent", false)
		assert.NoError(t, err)
		assert.Equal(t, lifecycle.ContractActive, updated.Status)
	})

	t.Run("completed flag finalizes the contract", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).
			Return(&domain.Contract{ID: 9, HireRequestID: 3, Status: lifecycle.ContractActive}, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)
		m.contractRepo.EXPECT().
			UpdateProgress(ctx, 9, "done", lifecycle.ContractCompleted, gomock.Not(gomock.Nil())).
			Return(&domain.Contract{ID: 9, Status: lifecycle.ContractCompleted}, nil)
		m.notificationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)

		updated, err := svc.UpdateProgress(ctx, student, 9, "done", true)
		assert.NoError(t, err)
		assert.Equal(t, lifecycle.ContractCompleted, updated.Status)
	})

	t.Run("buyer cannot report progress", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).
			Return(&domain.Contract{ID: 9, HireRequestID: 3, Status: lifecycle.ContractActive}, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)

		_, err := svc.UpdateProgress(ctx, lifecycle.Actor{UserID: 1, Role: lifecycle.RoleBuyer}, 9, "nudge", false)
		assert.ErrorIs(t, err, lifecycle.ErrForbidden)
	})

	t.Run("completed contract is immutable", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).
			Return(&domain.Contract{ID: 9, HireRequestID: 3, Status: lifecycle.ContractCompleted}, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)

		_, err := svc.UpdateProgress(ctx, student, 9, "more", false)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	})

	t.Run("missing hire request", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).
			Return(&domain.Contract{ID: 9, HireRequestID: 3, Status: lifecycle.ContractActive}, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)

		_, err := svc.UpdateProgress(ctx, student, 9, "note", false)
		assert.ErrorIs(t, err, ErrHireRequestNotFound)
	})
}

func TestGetContract(t *testing.T) {
	ctx := context.Background()
	contract := &domain.Contract{ID: 9, HireRequestID: 3}
	hire := &domain.HireRequest{ID: 3, BuyerID: 1, StudentID: 2}

	t.Run("party can read", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).Return(contract, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)

		got, err := svc.GetContract(ctx, 1, 9)
		assert.NoError(t, err)
		assert.Equal(t, contract, got)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).Return(contract, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(hire, nil)

		_, err := svc.GetContract(ctx, 42, 9)
		assert.ErrorIs(t, err, ErrNotParty)
	})

	t.Run("missing hire request", func(t *testing.T) {
		svc, m := NewMock(t)
		m.contractRepo.EXPECT().FindByID(ctx, 9).Return(contract, nil)
		m.hireRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)

		_, err := svc.GetContract(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrHireRequestNotFound)
	})
}

func TestGetRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("returns requests", func(t *testing.T) {
		svc, m := NewMock(t)
		want := []domain.HireRequest{{ID: 1}, {ID: 2}}
		m.hireRepo.EXPECT().FindByUserID(ctx, 1).Return(want, nil)

		got, err := svc.GetRequests(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates repo error", func(t *testing.T) {
		svc, m := NewMock(t)
		m.hireRepo.EXPECT().FindByUserID(ctx, 1).Return(nil, errors.New("db down"))

		_, err := svc.GetRequests(ctx, 1)
		assert.Error(t, err)
	})
}
