package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
	"github.com/collabotree/collabotree/internal/ordernumber"
	"github.com/collabotree/collabotree/internal/pg"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	NumberTaken(ctx context.Context, number string) (bool, error)
	Save(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int, status string, paymentRef *uuid.UUID) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindDeliveredBefore(ctx context.Context, cutoff time.Time) ([]domain.Order, error)
}

type HireRepo interface {
	FindByID(ctx context.Context, id int) (*domain.HireRequest, error)
}

type WalletRepo interface {
	CreateEntry(ctx context.Context, entry *domain.WalletEntry) (*domain.WalletEntry, error)
	GetBalance(ctx context.Context, userID int) (int64, error)
}

type DisputeRepo interface {
	Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	orderRepo        OrderRepo
	hireRepo         HireRepo
	walletRepo       WalletRepo
	disputeRepo      DisputeRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
	allocator        ordernumber.Allocator
	commissionPct    int64
}

func New(orderRepo OrderRepo, hireRepo HireRepo, walletRepo WalletRepo, disputeRepo DisputeRepo,
	notificationRepo NotificationRepo, txManager pg.TXManager, commissionPct int) *Service {
	return &Service{
		orderRepo:        orderRepo,
		hireRepo:         hireRepo,
		walletRepo:       walletRepo,
		disputeRepo:      disputeRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		allocator:        ordernumber.New(),
		commissionPct:    int64(commissionPct),
	}
}

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrHireRequestNotFound    = errors.New("hire request not found")
	ErrHireRequestNotAccepted = errors.New("hire request not accepted")
	ErrNotRequestBuyer        = errors.New("hire request belongs to another buyer")
	ErrInsufficientFunds      = errors.New("insufficient wallet balance")
)

// Create turns an ACCEPTED hire request into a PENDING order. Number
// allocation, the uniqueness check and the insert run in one transaction;
// the unique constraint on order_number is the backstop for a race the
// transaction should already prevent, so a constraint hit re-runs the whole
// allocation exactly once.
func (s *Service) Create(ctx context.Context, buyerID, hireRequestID int) (*domain.Order, error) {
	order, err := s.create(ctx, buyerID, hireRequestID)
	if errors.Is(err, domain.ErrOrderNumberConflict) {
		zap.L().Warn("order number conflict, re-running allocation", zap.Int("hire_request_id", hireRequestID))
		order, err = s.create(ctx, buyerID, hireRequestID)
	}
	return order, err
}

func (s *Service) create(ctx context.Context, buyerID, hireRequestID int) (*domain.Order, error) {
	var created *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		hire, err := s.hireRepo.FindByID(ctx, hireRequestID)
		if err != nil {
			return err
		}
		if hire == nil {
			return ErrHireRequestNotFound
		}
		if hire.BuyerID != buyerID {
			return ErrNotRequestBuyer
		}
		if hire.Status != lifecycle.HireAccepted {
			return ErrHireRequestNotAccepted
		}

		number, err := s.allocator.Allocate(ctx, s.orderRepo.NumberTaken)
		if err != nil {
			if errors.Is(err, ordernumber.ErrKeyspaceExhausted) {
				zap.L().Error("order number keyspace exhausted, numbering scheme must be widened")
			}
			return err
		}

		order := &domain.Order{
			HireRequestID: hire.ID,
			BuyerID:       hire.BuyerID,
			StudentID:     hire.StudentID,
			OrderNumber:   number,
			Status:        lifecycle.OrderPending,
			AmountCents:   hire.PriceCents,
			CreatedAt:     time.Now(),
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}
		created = order

		return s.notify(ctx, order.StudentID, "order_created", order.OrderNumber)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition applies one lifecycle edge to an order together with its money
// side effects, all inside a single transaction. reason is only used for
// the DISPUTED edge.
func (s *Service) Transition(ctx context.Context, actor lifecycle.Actor, orderID int, target, reason string) (*domain.Order, error) {
	var updated *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		parties := lifecycle.Parties{BuyerID: order.BuyerID, StudentID: order.StudentID}
		if err := lifecycle.Check(lifecycle.KindOrder, order.Status, target, actor, parties); err != nil {
			return err
		}

		var paymentRef *uuid.UUID
		switch target {
		case lifecycle.OrderPaid:
			ref := uuid.New()
			if err := s.capturePayment(ctx, order, ref); err != nil {
				return err
			}
			paymentRef = &ref
		case lifecycle.OrderCompleted:
			if err := s.releasePayout(ctx, order); err != nil {
				return err
			}
		case lifecycle.OrderCancelled:
			if err := s.refundIfPaid(ctx, order); err != nil {
				return err
			}
		case lifecycle.OrderDisputed:
			dispute := &domain.Dispute{
				OrderID:     order.ID,
				InitiatorID: actor.UserID,
				Reason:      reason,
				Status:      "OPEN",
				CreatedAt:   time.Now(),
			}
			if _, err := s.disputeRepo.Create(ctx, dispute); err != nil {
				return err
			}
		}

		updated, err = s.orderRepo.UpdateStatus(ctx, order.ID, target, paymentRef)
		if err != nil {
			return err
		}

		other := order.StudentID
		if actor.UserID != order.BuyerID {
			other = order.BuyerID
		}
		return s.notify(ctx, other, "order_"+target, order.OrderNumber)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) capturePayment(ctx context.Context, order *domain.Order, ref uuid.UUID) error {
	balance, err := s.walletRepo.GetBalance(ctx, order.BuyerID)
	if err != nil {
		return err
	}
	if balance < order.AmountCents {
		return ErrInsufficientFunds
	}
	_, err = s.walletRepo.CreateEntry(ctx, &domain.WalletEntry{
		UserID:      order.BuyerID,
		AmountCents: -order.AmountCents,
		Reason:      "order payment",
		Reference:   ref,
		CreatedAt:   time.Now(),
	})
	return err
}

func (s *Service) releasePayout(ctx context.Context, order *domain.Order) error {
	if order.PaymentRef == nil {
		// Completing a never-paid order (dispute resolution on a PENDING
		// dispute) releases nothing.
		zap.L().Warn("completing order without captured payment", zap.String("order_number", order.OrderNumber))
		return nil
	}
	payout := order.AmountCents - order.AmountCents*s.commissionPct/100
	_, err := s.walletRepo.CreateEntry(ctx, &domain.WalletEntry{
		UserID:      order.StudentID,
		AmountCents: payout,
		Reason:      "order payout",
		Reference:   *order.PaymentRef,
		CreatedAt:   time.Now(),
	})
	return err
}

func (s *Service) refundIfPaid(ctx context.Context, order *domain.Order) error {
	if order.PaymentRef == nil {
		return nil
	}
	_, err := s.walletRepo.CreateEntry(ctx, &domain.WalletEntry{
		UserID:      order.BuyerID,
		AmountCents: order.AmountCents,
		Reason:      "order refund",
		Reference:   *order.PaymentRef,
		CreatedAt:   time.Now(),
	})
	return err
}

func (s *Service) notify(ctx context.Context, userID int, kind, payload string) error {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:    userID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
	return err
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || (order.BuyerID != userID && order.StudentID != userID) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CompleteOverdue moves DELIVERED orders older than the window to COMPLETED
// on behalf of the platform. Used by the auto-completion job.
func (s *Service) CompleteOverdue(ctx context.Context, olderThan time.Duration) error {
	orders, err := s.orderRepo.FindDeliveredBefore(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return err
	}
	actor := lifecycle.Actor{Role: lifecycle.RoleAdmin}
	for _, order := range orders {
		if _, err := s.Transition(ctx, actor, order.ID, lifecycle.OrderCompleted, ""); err != nil {
			zap.L().Error("can't auto-complete order", zap.String("order_number", order.OrderNumber), zap.Error(err))
		}
	}
	return nil
}
