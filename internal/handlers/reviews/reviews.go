package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	reviewservice "github.com/collabotree/collabotree/internal/service/reviewservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, buyerID, orderID, rating int, comment string) (*domain.Review, error)
	GetByListing(ctx context.Context, listingID int) ([]domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview godoc
//
//	@Summary		Leave a review
//	@Description	One review per completed order, by its buyer
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateReviewRequestDTO	true	"Create review request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ReviewResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or rating out of range"
//	@Failure		403	{object}	utils.Response	"Only the buyer may review"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order not completed or already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(r.Context(), userID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, reviewservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reviewservice.ErrNotOrderBuyer):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, reviewservice.ErrOrderNotCompleted), errors.Is(err, reviewservice.ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReviewDTO(review))
}

// GetListingReviews godoc
//
//	@Summary		Get reviews for a listing
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path	int	true	"Listing ID"
//	@Success		200	{array}		dto.ReviewResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/{id}/reviews [get]
func (h *ReviewHandler) GetListingReviews(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	reviews, err := h.reviewService.GetByListing(r.Context(), listingID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(reviews) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.ReviewResponseDTO
	for _, review := range reviews {
		response = append(response, toReviewDTO(&review))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toReviewDTO(review *domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:        review.ID,
		OrderID:   review.OrderID,
		ListingID: review.ListingID,
		BuyerID:   review.BuyerID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
