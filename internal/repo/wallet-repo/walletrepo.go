package walletrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateEntry appends one ledger line. The ledger is append-only: there is
// no update or delete path for wallet_entries anywhere in the codebase.
func (r *Repository) CreateEntry(ctx context.Context, entry *domain.WalletEntry) (*domain.WalletEntry, error) {
	query := `
        INSERT INTO wallet_entries (user_id, amount_cents, reason, reference, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.AmountCents, entry.Reason, entry.Reference, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save wallet entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// GetBalance derives the balance by aggregation; nothing stores it.
func (r *Repository) GetBalance(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_cents), 0)
        FROM wallet_entries
        WHERE user_id = $1
    `
	var balance int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("can't get wallet balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) FindEntriesByUserID(ctx context.Context, userID int) ([]domain.WalletEntry, error) {
	query := `
        SELECT id, user_id, amount_cents, reason, reference, created_at
        FROM wallet_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get wallet entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WalletEntry
	for rows.Next() {
		var entry domain.WalletEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.AmountCents, &entry.Reason, &entry.Reference, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
