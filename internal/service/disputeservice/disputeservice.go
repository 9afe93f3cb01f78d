package disputeservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
	"github.com/collabotree/collabotree/internal/pg"
)

type DisputeRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Dispute, error)
	FindOpen(ctx context.Context) ([]domain.Dispute, error)
	Resolve(ctx context.Context, id int, resolution string, resolvedBy int, resolvedAt time.Time) (*domain.Dispute, error)
}

// OrderService settles the disputed order as part of the resolution.
type OrderService interface {
	Transition(ctx context.Context, actor lifecycle.Actor, orderID int, target, reason string) (*domain.Order, error)
}

type Service struct {
	disputeRepo  DisputeRepo
	orderService OrderService
	txManager    pg.TXManager
}

func New(disputeRepo DisputeRepo, orderService OrderService, txManager pg.TXManager) *Service {
	return &Service{
		disputeRepo:  disputeRepo,
		orderService: orderService,
		txManager:    txManager,
	}
}

// Resolution outcomes. Refund cancels the order and returns captured money
// to the buyer; release completes it and pays the student out.
const (
	OutcomeRefund  = "refund"
	OutcomeRelease = "release"
)

var (
	ErrDisputeNotFound = errors.New("dispute not found")
	ErrDisputeClosed   = errors.New("dispute already resolved")
	ErrUnknownOutcome  = errors.New("unknown resolution outcome")
)

func (s *Service) GetOpen(ctx context.Context) ([]domain.Dispute, error) {
	disputes, err := s.disputeRepo.FindOpen(ctx)
	if err != nil {
		zap.L().Error("can't get open disputes", zap.Error(err))
		return nil, err
	}
	return disputes, nil
}

// Resolve closes a dispute and settles the underlying order in the same
// transaction. The order transition runs with admin authority so the
// DISPUTED edges apply.
func (s *Service) Resolve(ctx context.Context, adminID, disputeID int, outcome, resolution string) (*domain.Dispute, error) {
	var target string
	switch outcome {
	case OutcomeRefund:
		target = lifecycle.OrderCancelled
	case OutcomeRelease:
		target = lifecycle.OrderCompleted
	default:
		return nil, ErrUnknownOutcome
	}

	var resolved *domain.Dispute
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		dispute, err := s.disputeRepo.FindByID(ctx, disputeID)
		if err != nil {
			return err
		}
		if dispute == nil {
			return ErrDisputeNotFound
		}
		if dispute.Status != "OPEN" {
			return ErrDisputeClosed
		}

		actor := lifecycle.Actor{UserID: adminID, Role: lifecycle.RoleAdmin}
		if _, err := s.orderService.Transition(ctx, actor, dispute.OrderID, target, ""); err != nil {
			return err
		}

		resolved, err = s.disputeRepo.Resolve(ctx, dispute.ID, resolution, adminID, time.Now())
		if err != nil {
			return err
		}

		zap.L().Info("dispute resolved",
			zap.Int("dispute_id", dispute.ID),
			zap.String("outcome", outcome),
			zap.Int("resolved_by", adminID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}
