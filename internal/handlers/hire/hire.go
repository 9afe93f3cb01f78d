package hire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	"github.com/collabotree/collabotree/internal/lifecycle"
	hireservice "github.com/collabotree/collabotree/internal/service/hireservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, buyerID, listingID int, message string, priceCents int64) (*domain.HireRequest, error)
	Transition(ctx context.Context, actor lifecycle.Actor, hireRequestID int, target string) (*domain.HireRequest, error)
	GetRequests(ctx context.Context, userID int) ([]domain.HireRequest, error)
	CreateContract(ctx context.Context, studentID, hireRequestID int, deliverables string, deadline time.Time, signature string) (*domain.Contract, error)
	UpdateProgress(ctx context.Context, actor lifecycle.Actor, contractID int, note string, completed bool) (*domain.Contract, error)
	GetContract(ctx context.Context, userID, contractID int) (*domain.Contract, error)
}

type HireHandler struct {
	hireService Service
}

func New(hireService Service) *HireHandler {
	return &HireHandler{
		hireService: hireService,
	}
}

var hireTargets = []string{lifecycle.HireAccepted, lifecycle.HireRejected, lifecycle.HireCancelled}

// CreateHireRequest godoc
//
//	@Summary		Send a hire request
//	@Description	Ask the student behind an approved listing to take on the work
//	@Tags			Hire
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateHireRequestDTO	true	"Hire request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.HireRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Listing not found"
//	@Failure		409	{object}	utils.Response	"Listing not approved or own listing"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/hire-requests [post]
func (h *HireHandler) CreateHireRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateHireRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hire, err := h.hireService.CreateRequest(r.Context(), userID, req.ListingID, req.Message, req.PriceCents)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, hireservice.ErrListingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, hireservice.ErrListingNotApproved), errors.Is(err, hireservice.ErrOwnListing):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toHireDTO(hire))
}

// TransitionHireRequest godoc
//
//	@Summary		Accept, reject or cancel a hire request
//	@Tags			Hire
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Hire request ID"
//	@Param			request	body	dto.TransitionOrderRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.HireRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or unknown status"
//	@Failure		403	{object}	utils.Response	"Actor not permitted"
//	@Failure		404	{object}	utils.Response	"Hire request not found"
//	@Failure		409	{object}	utils.Response	"Transition not legal from current state"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/hire-requests/{id}/transition [post]
func (h *HireHandler) TransitionHireRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	hireRequestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hire request id")
		return
	}

	var req dto.TransitionOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var known bool
	for _, target := range hireTargets {
		if req.Status == target {
			known = true
			break
		}
	}
	if !known {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown target status")
		return
	}

	actor := lifecycle.Actor{UserID: userID, Role: lifecycle.Role(role)}
	hire, err := h.hireService.Transition(r.Context(), actor, hireRequestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, hireservice.ErrHireRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, lifecycle.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toHireDTO(hire))
}

// GetHireRequests godoc
//
//	@Summary		Get hire requests for user
//	@Description	Requests the authorized user sent or received
//	@Tags			Hire
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.HireRequestResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/hire-requests [get]
func (h *HireHandler) GetHireRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	hires, err := h.hireService.GetRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(hires) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.HireRequestResponseDTO
	for _, hire := range hires {
		response = append(response, toHireDTO(&hire))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateContract godoc
//
//	@Summary		Create a contract
//	@Description	Formalize an accepted hire request into a contract
//	@Tags			Contracts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateContractRequestDTO	true	"Create contract request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ContractResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Not the addressed student"
//	@Failure		404	{object}	utils.Response	"Hire request not found"
//	@Failure		409	{object}	utils.Response	"Request not accepted or contract exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts [post]
func (h *HireHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateContractRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contract, err := h.hireService.CreateContract(r.Context(), userID, req.HireRequestID, req.Deliverables, req.Deadline, req.Signature)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, hireservice.ErrHireRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, hireservice.ErrNotRequestStudent):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, hireservice.ErrContractExists), errors.Is(err, lifecycle.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toContractDTO(contract))
}

// GetContract godoc
//
//	@Summary		Get one contract
//	@Tags			Contracts
//	@Produce		json
//	@Param			id	path	int	true	"Contract ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ContractResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to this contract"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts/{id} [get]
func (h *HireHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	contractID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	contract, err := h.hireService.GetContract(r.Context(), userID, contractID)
	if err != nil {
		switch {
		case errors.Is(err, hireservice.ErrContractNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, hireservice.ErrNotParty):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContractDTO(contract))
}

// UpdateProgress godoc
//
//	@Summary		Report contract progress
//	@Description	Append a progress note, optionally completing the contract
//	@Tags			Contracts
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Contract ID"
//	@Param			request	body	dto.UpdateProgressRequestDTO	true	"Progress note"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ContractResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Actor not permitted"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		409	{object}	utils.Response	"Contract not active"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts/{id}/progress [post]
func (h *HireHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	contractID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	var req dto.UpdateProgressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actor := lifecycle.Actor{UserID: userID, Role: lifecycle.Role(role)}
	contract, err := h.hireService.UpdateProgress(r.Context(), actor, contractID, req.Note, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, hireservice.ErrContractNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, lifecycle.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContractDTO(contract))
}

func toHireDTO(hire *domain.HireRequest) dto.HireRequestResponseDTO {
	return dto.HireRequestResponseDTO{
		ID:         hire.ID,
		ListingID:  hire.ListingID,
		BuyerID:    hire.BuyerID,
		StudentID:  hire.StudentID,
		Message:    hire.Message,
		PriceCents: hire.PriceCents,
		Status:     hire.Status,
		CreatedAt:  hire.CreatedAt,
	}
}

func toContractDTO(contract *domain.Contract) dto.ContractResponseDTO {
	return dto.ContractResponseDTO{
		ID:            contract.ID,
		HireRequestID: contract.HireRequestID,
		Deliverables:  contract.Deliverables,
		Deadline:      contract.Deadline,
		Signature:     contract.Signature,
		Progress:      contract.Progress,
		Status:        contract.Status,
		CompletedAt:   contract.CompletedAt,
		CreatedAt:     contract.CreatedAt,
	}
}
