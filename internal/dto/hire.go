package dto

import "time"

type CreateHireRequestDTO struct {
	ListingID  int    `json:"listing_id" validate:"required" example:"7"`
	Message    string `json:"message" example:"Can you start next week?"`
	PriceCents int64  `json:"price_cents" example:"4500"`
}

type HireRequestResponseDTO struct {
	ID         int       `json:"id" example:"3"`
	ListingID  int       `json:"listing_id" example:"7"`
	BuyerID    int       `json:"buyer_id" example:"1"`
	StudentID  int       `json:"student_id" example:"2"`
	Message    string    `json:"message" example:"Can you start next week?"`
	PriceCents int64     `json:"price_cents" example:"4500"`
	Status     string    `json:"status" example:"PENDING"`
	CreatedAt  time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type CreateContractRequestDTO struct {
	HireRequestID int       `json:"hire_request_id" validate:"required" example:"3"`
	Deliverables  string    `json:"deliverables" validate:"required" example:"Logo in SVG and PNG"`
	Deadline      time.Time `json:"deadline" example:"2021-01-09T16:09:57+03:00"`
	Signature     string    `json:"signature" validate:"required" example:"Jane D."`
}

type ContractResponseDTO struct {
	ID            int        `json:"id" example:"9"`
	HireRequestID int        `json:"hire_request_id" example:"3"`
	Deliverables  string     `json:"deliverables" example:"Logo in SVG and PNG"`
	Deadline      time.Time  `json:"deadline" example:"2021-01-09T16:09:57+03:00"`
	Signature     string     `json:"signature" example:"Jane D."`
	Progress      string     `json:"progress" example:"sketches done"`
	Status        string     `json:"status" example:"ACTIVE"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type UpdateProgressRequestDTO struct {
	Note      string `json:"note" example:"final draft sent"`
	Completed bool   `json:"completed" example:"false"`
}
