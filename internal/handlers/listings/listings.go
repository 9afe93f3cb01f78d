package listings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	listingservice "github.com/collabotree/collabotree/internal/service/listingservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, studentID int, title, description string, priceCents int64) (*domain.Listing, error)
	GetApproved(ctx context.Context) ([]domain.Listing, error)
	GetPending(ctx context.Context) ([]domain.Listing, error)
	GetByStudent(ctx context.Context, studentID int) ([]domain.Listing, error)
	Get(ctx context.Context, id int) (*domain.Listing, error)
	Moderate(ctx context.Context, id int, approve bool) (*domain.Listing, error)
}

type ListingHandler struct {
	listingService Service
}

func New(listingService Service) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// CreateListing godoc
//
//	@Summary		Create a listing
//	@Description	Submit a service listing for moderation
//	@Tags			Listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateListingRequestDTO	true	"Create listing request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ListingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Students only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings [post]
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateListingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.listingService.Create(r.Context(), userID, req.Title, req.Description, req.PriceCents)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toListingDTO(listing))
}

// GetListings godoc
//
//	@Summary		Browse the catalog
//	@Description	All approved listings, newest first
//	@Tags			Listings
//	@Produce		json
//	@Success		200	{array}		dto.ListingResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings [get]
func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.GetApproved(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondListings(w, listings)
}

// GetMyListings godoc
//
//	@Summary		Get own listings
//	@Description	All listings of the authorized student, any status
//	@Tags			Listings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ListingResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/mine [get]
func (h *ListingHandler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	listings, err := h.listingService.GetByStudent(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondListings(w, listings)
}

// GetPendingListings godoc
//
//	@Summary		Get the moderation queue
//	@Description	Listings awaiting moderation, oldest first
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ListingResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/listings/pending [get]
func (h *ListingHandler) GetPendingListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.GetPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondListings(w, listings)
}

// GetListing godoc
//
//	@Summary		Get one listing
//	@Tags			Listings
//	@Produce		json
//	@Param			id	path	int	true	"Listing ID"
//	@Success		200	{object}	dto.ListingResponseDTO
//	@Failure		404	{object}	utils.Response	"Listing not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/{id} [get]
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	listing, err := h.listingService.Get(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, listingservice.ErrListingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toListingDTO(listing))
}

// ModerateListing godoc
//
//	@Summary		Approve or reject a listing
//	@Description	One-shot moderation decision on a pending listing
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Listing ID"
//	@Param			request	body	dto.ModerateListingRequestDTO	true	"Moderation decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ListingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		404	{object}	utils.Response	"Listing not found"
//	@Failure		409	{object}	utils.Response	"Listing already moderated"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/listings/{id}/moderate [post]
func (h *ListingHandler) ModerateListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	var req dto.ModerateListingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.listingService.Moderate(r.Context(), listingID, req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, listingservice.ErrListingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, listingservice.ErrNotModeratable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toListingDTO(listing))
}

func respondListings(w http.ResponseWriter, listings []domain.Listing) {
	if len(listings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	var response []dto.ListingResponseDTO
	for _, listing := range listings {
		response = append(response, toListingDTO(&listing))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toListingDTO(listing *domain.Listing) dto.ListingResponseDTO {
	return dto.ListingResponseDTO{
		ID:          listing.ID,
		StudentID:   listing.StudentID,
		Title:       listing.Title,
		Description: listing.Description,
		PriceCents:  listing.PriceCents,
		Status:      listing.Status,
		CreatedAt:   listing.CreatedAt,
	}
}
