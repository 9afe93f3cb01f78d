package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/pg"
	"github.com/collabotree/collabotree/pkg/validate"
)

type WalletRepo interface {
	CreateEntry(ctx context.Context, entry *domain.WalletEntry) (*domain.WalletEntry, error)
	GetBalance(ctx context.Context, userID int) (int64, error)
	FindEntriesByUserID(ctx context.Context, userID int) ([]domain.WalletEntry, error)
}

type Service struct {
	walletRepo WalletRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidCardNumber   = errors.New("invalid card number")
)

// GetBalance derives the balance from the entry ledger; there is no
// balance row to get out of sync.
func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetEntries(ctx context.Context, userID int) ([]domain.WalletEntry, error) {
	entries, err := s.walletRepo.FindEntriesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Deposit tops the wallet up from an external card. Card charging is out of
// scope here; only the number format is checked.
func (s *Service) Deposit(ctx context.Context, userID int, amountCents int64, cardNumber string) (*domain.WalletEntry, error) {
	if amountCents <= 0 {
		return nil, domain.NewValidationError("amount_cents", "must be positive")
	}
	if !validate.IsLuna(cardNumber) {
		return nil, ErrInvalidCardNumber
	}

	entry := &domain.WalletEntry{
		UserID:      userID,
		AmountCents: amountCents,
		Reason:      "deposit",
		Reference:   uuid.New(),
		CreatedAt:   time.Now(),
	}
	created, err := s.walletRepo.CreateEntry(ctx, entry)
	if err != nil {
		zap.L().Error("failed to create deposit entry", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Withdraw moves earnings out to an external card. The balance check and the
// debit entry share a transaction so concurrent withdrawals cannot overdraw.
func (s *Service) Withdraw(ctx context.Context, userID int, amountCents int64, cardNumber string) (*domain.WalletEntry, error) {
	if amountCents <= 0 {
		return nil, domain.NewValidationError("amount_cents", "must be positive")
	}
	if !validate.IsLuna(cardNumber) {
		return nil, ErrInvalidCardNumber
	}

	var created *domain.WalletEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.walletRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < amountCents {
			return ErrInsufficientBalance
		}

		created, err = s.walletRepo.CreateEntry(ctx, &domain.WalletEntry{
			UserID:      userID,
			AmountCents: -amountCents,
			Reason:      "withdrawal",
			Reference:   uuid.New(),
			CreatedAt:   time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
