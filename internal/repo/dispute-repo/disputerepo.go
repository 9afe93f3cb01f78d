package disputerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

const disputeColumns = `id, order_id, initiator_id, reason, status, resolution, resolved_by, created_at, resolved_at`

func scanDispute(row pgx.Row, d *domain.Dispute) error {
	return row.Scan(&d.ID, &d.OrderID, &d.InitiatorID, &d.Reason, &d.Status,
		&d.Resolution, &d.ResolvedBy, &d.CreatedAt, &d.ResolvedAt)
}

func (r *Repository) Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	query := `
        INSERT INTO disputes (order_id, initiator_id, reason, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, dispute.OrderID, dispute.InitiatorID, dispute.Reason,
		dispute.Status, dispute.CreatedAt).Scan(&dispute.ID)
	if err != nil {
		zap.L().Error("can't save dispute", zap.Error(err))
		return nil, err
	}
	return dispute, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes
        WHERE id = $1
    `
	var dispute domain.Dispute
	err := scanDispute(r.db.QueryRow(ctx, query, id), &dispute)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find dispute", zap.Error(err))
		return nil, err
	}
	return &dispute, nil
}

func (r *Repository) FindOpen(ctx context.Context) ([]domain.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes
        WHERE status = 'OPEN'
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get open disputes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.Dispute
	for rows.Next() {
		var dispute domain.Dispute
		if err := scanDispute(rows, &dispute); err != nil {
			zap.L().Error("can't scan dispute row", zap.Error(err))
			return nil, err
		}
		disputes = append(disputes, dispute)
	}
	return disputes, nil
}

func (r *Repository) Resolve(ctx context.Context, id int, resolution string, resolvedBy int, resolvedAt time.Time) (*domain.Dispute, error) {
	query := `
        UPDATE disputes
        SET status = 'RESOLVED', resolution = $1, resolved_by = $2, resolved_at = $3
        WHERE id = $4
        RETURNING ` + disputeColumns + `
    `
	var dispute domain.Dispute
	err := scanDispute(r.db.QueryRow(ctx, query, resolution, resolvedBy, resolvedAt, id), &dispute)
	if err != nil {
		zap.L().Error("can't resolve dispute", zap.Error(err))
		return nil, err
	}
	return &dispute, nil
}
