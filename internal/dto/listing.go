package dto

import "time"

type CreateListingRequestDTO struct {
	Title       string `json:"title" validate:"required,max=200" example:"Logo design"`
	Description string `json:"description" example:"Vector logo with two revisions"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0" example:"5000"`
}

type ListingResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	StudentID   int       `json:"student_id" example:"2"`
	Title       string    `json:"title" example:"Logo design"`
	Description string    `json:"description" example:"Vector logo with two revisions"`
	PriceCents  int64     `json:"price_cents" example:"5000"`
	Status      string    `json:"status" example:"APPROVED"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type ModerateListingRequestDTO struct {
	Approve bool `json:"approve" example:"true"`
}
