package dto

import "time"

type DisputeResponseDTO struct {
	ID          int        `json:"id" example:"5"`
	OrderID     int        `json:"order_id" example:"4"`
	InitiatorID int        `json:"initiator_id" example:"1"`
	Reason      string     `json:"reason" example:"work never delivered"`
	Status      string     `json:"status" example:"OPEN"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedBy  *int       `json:"resolved_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type ResolveDisputeRequestDTO struct {
	Outcome    string `json:"outcome" validate:"required" example:"refund"`
	Resolution string `json:"resolution" validate:"required" example:"buyer was right"`
}
