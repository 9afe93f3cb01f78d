package reviewrepo

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

func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (order_id, listing_id, buyer_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, review.OrderID, review.ListingID, review.BuyerID,
		review.Rating, review.Comment, review.CreatedAt).Scan(&review.ID)
	if err != nil {
		zap.L().Error("can't save review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) (*domain.Review, error) {
	query := `
        SELECT id, order_id, listing_id, buyer_id, rating, comment, created_at
        FROM reviews
        WHERE order_id = $1
    `
	var review domain.Review
	err := r.db.QueryRow(ctx, query, orderID).
		Scan(&review.ID, &review.OrderID, &review.ListingID, &review.BuyerID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return &review, nil
}

func (r *Repository) FindByListingID(ctx context.Context, listingID int) ([]domain.Review, error) {
	query := `
        SELECT id, order_id, listing_id, buyer_id, rating, comment, created_at
        FROM reviews
        WHERE listing_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, listingID)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.OrderID, &review.ListingID, &review.BuyerID, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
