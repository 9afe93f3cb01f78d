package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleBuyer   = "buyer"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Listing moderation statuses.
const (
	ListingPending  = "PENDING"
	ListingApproved = "APPROVED"
	ListingRejected = "REJECTED"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Listing struct {
	ID          int       `db:"id"`
	StudentID   int       `db:"student_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	PriceCents  int64     `db:"price_cents"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type HireRequest struct {
	ID         int       `db:"id"`
	ListingID  int       `db:"listing_id"`
	BuyerID    int       `db:"buyer_id"`
	StudentID  int       `db:"student_id"`
	Message    string    `db:"message"`
	PriceCents int64     `db:"price_cents"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type Contract struct {
	ID            int        `db:"id"`
	HireRequestID int        `db:"hire_request_id"`
	Deliverables  string     `db:"deliverables"`
	Deadline      time.Time  `db:"deadline"`
	Signature     string     `db:"signature"`
	Progress      string     `db:"progress"`
	Status        string     `db:"status"`
	CompletedAt   *time.Time `db:"completed_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Order struct {
	ID            int        `db:"id"`
	HireRequestID int        `db:"hire_request_id"`
	BuyerID       int        `db:"buyer_id"`
	StudentID     int        `db:"student_id"`
	OrderNumber   string     `db:"order_number"`
	Status        string     `db:"status"`
	AmountCents   int64      `db:"amount_cents"`
	PaymentRef    *uuid.UUID `db:"payment_ref"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// WalletEntry is a single immutable ledger line. A user's balance is the sum
// of their entries; it is never stored as a mutable column.
type WalletEntry struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	AmountCents int64     `db:"amount_cents"`
	Reason      string    `db:"reason"`
	Reference   uuid.UUID `db:"reference"`
	CreatedAt   time.Time `db:"created_at"`
}

type Review struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	ListingID int       `db:"listing_id"`
	BuyerID   int       `db:"buyer_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

type Dispute struct {
	ID          int        `db:"id"`
	OrderID     int        `db:"order_id"`
	InitiatorID int        `db:"initiator_id"`
	Reason      string     `db:"reason"`
	Status      string     `db:"status"`
	Resolution  string     `db:"resolution"`
	ResolvedBy  *int       `db:"resolved_by"`
	CreatedAt   time.Time  `db:"created_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Kind      string    `db:"kind"`
	Payload   string    `db:"payload"`
	Delivered bool      `db:"delivered"`
	CreatedAt time.Time `db:"created_at"`
}
