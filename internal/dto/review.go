package dto

import "time"

type CreateReviewRequestDTO struct {
	OrderID int    `json:"order_id" validate:"required" example:"4"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" example:"great work"`
}

type ReviewResponseDTO struct {
	ID        int       `json:"id" example:"6"`
	OrderID   int       `json:"order_id" example:"4"`
	ListingID int       `json:"listing_id" example:"7"`
	BuyerID   int       `json:"buyer_id" example:"1"`
	Rating    int       `json:"rating" example:"5"`
	Comment   string    `json:"comment" example:"great work"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
