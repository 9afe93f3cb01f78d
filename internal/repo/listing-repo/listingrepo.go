package listingrepo

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

const listingColumns = `id, student_id, title, description, price_cents, status, created_at`

func scanListing(row pgx.Row, listing *domain.Listing) error {
	return row.Scan(&listing.ID, &listing.StudentID, &listing.Title, &listing.Description,
		&listing.PriceCents, &listing.Status, &listing.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	query := `
        INSERT INTO listings (student_id, title, description, price_cents, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, listing.StudentID, listing.Title, listing.Description,
		listing.PriceCents, listing.Status, listing.CreatedAt).Scan(&listing.ID)
	if err != nil {
		zap.L().Error("can't save listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE id = $1
    `
	var listing domain.Listing
	err := scanListing(r.db.QueryRow(ctx, query, id), &listing)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find listing", zap.Error(err))
		return nil, err
	}
	return &listing, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE status = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, status)
}

func (r *Repository) FindByStudentID(ctx context.Context, studentID int) ([]domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE student_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, studentID)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Listing, error) {
	query := `
        UPDATE listings
        SET status = $1
        WHERE id = $2
        RETURNING ` + listingColumns + `
    `
	var listing domain.Listing
	err := scanListing(r.db.QueryRow(ctx, query, status, id), &listing)
	if err != nil {
		zap.L().Error("can't update listing status", zap.Error(err))
		return nil, err
	}
	return &listing, nil
}

func (r *Repository) findMany(ctx context.Context, query string, arg any) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get listings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var listing domain.Listing
		if err := scanListing(rows, &listing); err != nil {
			zap.L().Error("can't scan listing row", zap.Error(err))
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
