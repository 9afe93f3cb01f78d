package dto

import "time"

type CreateOrderRequestDTO struct {
	HireRequestID int `json:"hire_request_id" validate:"required" example:"3"`
}

type OrderResponseDTO struct {
	ID          int       `json:"id" example:"4"`
	OrderNumber string    `json:"order_number" example:"4821"`
	BuyerID     int       `json:"buyer_id" example:"1"`
	StudentID   int       `json:"student_id" example:"2"`
	Status      string    `json:"status" example:"PENDING"`
	AmountCents int64     `json:"amount_cents" example:"5000"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	UpdatedAt   time.Time `json:"updated_at" example:"2020-12-09T16:09:57+03:00"`
}

type TransitionOrderRequestDTO struct {
	Status string `json:"status" validate:"required" example:"PAID"`
	Reason string `json:"reason,omitempty" example:"work never delivered"`
}
