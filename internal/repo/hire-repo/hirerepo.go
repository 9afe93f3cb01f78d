package hirerepo

import (
	"context"

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

const hireColumns = `id, listing_id, buyer_id, student_id, message, price_cents, status, created_at`

func scanHire(row pgx.Row, hire *domain.HireRequest) error {
	return row.Scan(&hire.ID, &hire.ListingID, &hire.BuyerID, &hire.StudentID,
		&hire.Message, &hire.PriceCents, &hire.Status, &hire.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, hire *domain.HireRequest) (*domain.HireRequest, error) {
	query := `
        INSERT INTO hire_requests (listing_id, buyer_id, student_id, message, price_cents, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, hire.ListingID, hire.BuyerID, hire.StudentID,
		hire.Message, hire.PriceCents, hire.Status, hire.CreatedAt).Scan(&hire.ID)
	if err != nil {
		zap.L().Error("can't save hire request", zap.Error(err))
		return nil, err
	}
	return hire, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.HireRequest, error) {
	query := `
        SELECT ` + hireColumns + `
        FROM hire_requests
        WHERE id = $1
    `
	var hire domain.HireRequest
	err := scanHire(r.db.QueryRow(ctx, query, id), &hire)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find hire request", zap.Error(err))
		return nil, err
	}
	return &hire, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.HireRequest, error) {
	query := `
        SELECT ` + hireColumns + `
        FROM hire_requests
        WHERE buyer_id = $1 OR student_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get hire requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var hires []domain.HireRequest
	for rows.Next() {
		var hire domain.HireRequest
		if err := scanHire(rows, &hire); err != nil {
			zap.L().Error("can't scan hire request row", zap.Error(err))
			return nil, err
		}
		hires = append(hires, hire)
	}
	return hires, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.HireRequest, error) {
	query := `
        UPDATE hire_requests
        SET status = $1
        WHERE id = $2
        RETURNING ` + hireColumns + `
    `
	var hire domain.HireRequest
	err := scanHire(r.db.QueryRow(ctx, query, status, id), &hire)
	if err != nil {
		zap.L().Error("can't update hire request status", zap.Error(err))
		return nil, err
	}
	return &hire, nil
}
