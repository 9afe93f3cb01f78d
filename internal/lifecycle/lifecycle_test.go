package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var parties = Parties{BuyerID: 1, StudentID: 2}

func TestCheckHireRequest(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		actor   Actor
		wantErr error
	}{
		{
			name:  "student accepts pending request",
			from:  HirePending,
			to:    HireAccepted,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:  "student rejects pending request",
			from:  HirePending,
			to:    HireRejected,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:    "buyer cannot accept their own request",
			from:    HirePending,
			to:      HireAccepted,
			actor:   Actor{UserID: 1, Role: RoleBuyer},
			wantErr: ErrForbidden,
		},
		{
			name:    "unrelated student cannot accept",
			from:    HirePending,
			to:      HireAccepted,
			actor:   Actor{UserID: 99, Role: RoleStudent},
			wantErr: ErrForbidden,
		},
		{
			name:  "buyer cancels pending request",
			from:  HirePending,
			to:    HireCancelled,
			actor: Actor{UserID: 1, Role: RoleBuyer},
		},
		{
			name:  "student cancels accepted request",
			from:  HireAccepted,
			to:    HireCancelled,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:    "re-accepting an accepted request is not a no-op",
			from:    HireAccepted,
			to:      HireAccepted,
			actor:   Actor{UserID: 2, Role: RoleStudent},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "rejected is terminal regardless of actor",
			from:    HireRejected,
			to:      HireAccepted,
			actor:   Actor{UserID: 2, Role: RoleAdmin},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			from:    HireCancelled,
			to:      HirePending,
			actor:   Actor{UserID: 1, Role: RoleBuyer},
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(KindHireRequest, tt.from, tt.to, tt.actor, parties)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckOrder(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		actor   Actor
		wantErr error
	}{
		{
			name:  "buyer pays pending order",
			from:  OrderPending,
			to:    OrderPaid,
			actor: Actor{UserID: 1, Role: RoleBuyer},
		},
		{
			name:    "student cannot capture payment",
			from:    OrderPending,
			to:      OrderPaid,
			actor:   Actor{UserID: 2, Role: RoleStudent},
			wantErr: ErrForbidden,
		},
		{
			name:  "student starts paid order",
			from:  OrderPaid,
			to:    OrderInProgress,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:  "student delivers",
			from:  OrderInProgress,
			to:    OrderDelivered,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:  "buyer completes delivered order",
			from:  OrderDelivered,
			to:    OrderCompleted,
			actor: Actor{UserID: 1, Role: RoleBuyer},
		},
		{
			name:  "admin completes delivered order",
			from:  OrderDelivered,
			to:    OrderCompleted,
			actor: Actor{UserID: 0, Role: RoleAdmin},
		},
		{
			name:    "skipping states is illegal",
			from:    OrderPending,
			to:      OrderDelivered,
			actor:   Actor{UserID: 2, Role: RoleStudent},
			wantErr: ErrInvalidTransition,
		},
		{
			name:  "either party disputes",
			from:  OrderPaid,
			to:    OrderDisputed,
			actor: Actor{UserID: 2, Role: RoleStudent},
		},
		{
			name:    "admin cannot dispute on behalf of parties",
			from:    OrderPaid,
			to:      OrderDisputed,
			actor:   Actor{UserID: 7, Role: RoleAdmin},
			wantErr: ErrForbidden,
		},
		{
			name:  "admin resolves dispute to cancelled",
			from:  OrderDisputed,
			to:    OrderCancelled,
			actor: Actor{UserID: 7, Role: RoleAdmin},
		},
		{
			name:  "admin resolves dispute to completed",
			from:  OrderDisputed,
			to:    OrderCompleted,
			actor: Actor{UserID: 7, Role: RoleAdmin},
		},
		{
			name:    "buyer cannot resolve dispute",
			from:    OrderDisputed,
			to:      OrderCancelled,
			actor:   Actor{UserID: 1, Role: RoleBuyer},
			wantErr: ErrForbidden,
		},
		{
			name:    "completed is terminal",
			from:    OrderCompleted,
			to:      OrderCancelled,
			actor:   Actor{UserID: 7, Role: RoleAdmin},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			from:    OrderCancelled,
			to:      OrderPending,
			actor:   Actor{UserID: 7, Role: RoleAdmin},
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(KindOrder, tt.from, tt.to, tt.actor, parties)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckContract(t *testing.T) {
	err := Check(KindContract, ContractActive, ContractCompleted, Actor{UserID: 2, Role: RoleStudent}, parties)
	assert.NoError(t, err)

	err = Check(KindContract, ContractActive, ContractCompleted, Actor{UserID: 1, Role: RoleBuyer}, parties)
	assert.ErrorIs(t, err, ErrForbidden)

	err = Check(KindContract, ContractCompleted, ContractActive, Actor{UserID: 2, Role: RoleStudent}, parties)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
