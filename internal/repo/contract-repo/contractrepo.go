package contractrepo

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

const contractColumns = `id, hire_request_id, deliverables, deadline, signature, progress, status, completed_at, created_at`

func scanContract(row pgx.Row, c *domain.Contract) error {
	return row.Scan(&c.ID, &c.HireRequestID, &c.Deliverables, &c.Deadline, &c.Signature,
		&c.Progress, &c.Status, &c.CompletedAt, &c.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	query := `
        INSERT INTO contracts (hire_request_id, deliverables, deadline, signature, progress, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, contract.HireRequestID, contract.Deliverables, contract.Deadline,
		contract.Signature, contract.Progress, contract.Status, contract.CreatedAt).Scan(&contract.ID)
	if err != nil {
		zap.L().Error("can't save contract", zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE id = $1
    `
	var contract domain.Contract
	err := scanContract(r.db.QueryRow(ctx, query, id), &contract)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contract", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

func (r *Repository) FindByHireRequestID(ctx context.Context, hireRequestID int) (*domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE hire_request_id = $1
    `
	var contract domain.Contract
	err := scanContract(r.db.QueryRow(ctx, query, hireRequestID), &contract)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contract by hire request", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, id int, progress, status string, completedAt *time.Time) (*domain.Contract, error) {
	query := `
        UPDATE contracts
        SET progress = $1, status = $2, completed_at = $3
        WHERE id = $4
        RETURNING ` + contractColumns + `
    `
	var contract domain.Contract
	err := scanContract(r.db.QueryRow(ctx, query, progress, status, completedAt, id), &contract)
	if err != nil {
		zap.L().Error("can't update contract", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}
