package notificationrepo

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

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, kind, payload, delivered, created_at)
        VALUES ($1, $2, $3, FALSE, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, n.UserID, n.Kind, n.Payload, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, kind, payload, delivered, created_at
        FROM notifications
        WHERE NOT delivered
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get undelivered notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Payload, &n.Delivered, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id int) error {
	query := `
        UPDATE notifications
        SET delivered = TRUE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark notification delivered", zap.Error(err))
		return err
	}
	return nil
}
