package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func scanOrder(row pgx.Row, order *domain.Order) error {
	return row.Scan(&order.ID, &order.HireRequestID, &order.BuyerID, &order.StudentID,
		&order.OrderNumber, &order.Status, &order.AmountCents, &order.PaymentRef,
		&order.CreatedAt, &order.UpdatedAt)
}

const orderColumns = `id, hire_request_id, buyer_id, student_id, order_number, status, amount_cents, payment_ref, created_at, updated_at`

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, id), &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// NumberTaken backs the allocator's uniqueness check. It must be called with
// the transactional context of the pending insert.
func (r *Repository) NumberTaken(ctx context.Context, number string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)
    `
	var taken bool
	if err := r.db.QueryRow(ctx, query, number).Scan(&taken); err != nil {
		zap.L().Error("can't check order number", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (hire_request_id, buyer_id, student_id, order_number, status, amount_cents, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, order.HireRequestID, order.BuyerID, order.StudentID,
		order.OrderNumber, order.Status, order.AmountCents, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrOrderNumberConflict
		}
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, paymentRef *uuid.UUID) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = $1, payment_ref = COALESCE($2, payment_ref), updated_at = now()
        WHERE id = $3
        RETURNING ` + orderColumns + `
    `
	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, status, paymentRef, id), &order)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE buyer_id = $1 OR student_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// FindDeliveredBefore feeds the auto-completion job.
func (r *Repository) FindDeliveredBefore(ctx context.Context, cutoff time.Time) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = 'DELIVERED' AND updated_at < $1
        ORDER BY updated_at ASC
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't get delivered orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan delivered order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
