package disputes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	"github.com/collabotree/collabotree/internal/lifecycle"
	disputeservice "github.com/collabotree/collabotree/internal/service/disputeservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	GetOpen(ctx context.Context) ([]domain.Dispute, error)
	Resolve(ctx context.Context, adminID, disputeID int, outcome, resolution string) (*domain.Dispute, error)
}

type DisputeHandler struct {
	disputeService Service
}

func New(disputeService Service) *DisputeHandler {
	return &DisputeHandler{
		disputeService: disputeService,
	}
}

// GetOpenDisputes godoc
//
//	@Summary		Get open disputes
//	@Description	Disputes awaiting an admin decision, oldest first
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DisputeResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes [get]
func (h *DisputeHandler) GetOpenDisputes(w http.ResponseWriter, r *http.Request) {
	disputes, err := h.disputeService.GetOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(disputes) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.DisputeResponseDTO
	for _, dispute := range disputes {
		response = append(response, toDisputeDTO(&dispute))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveDispute godoc
//
//	@Summary		Resolve a dispute
//	@Description	Refund the buyer or release the payout, closing the dispute
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Dispute ID"
//	@Param			request	body	dto.ResolveDisputeRequestDTO	true	"Resolution decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DisputeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or unknown outcome"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		404	{object}	utils.Response	"Dispute not found"
//	@Failure		409	{object}	utils.Response	"Dispute already resolved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes/{id}/resolve [post]
func (h *DisputeHandler) ResolveDispute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	disputeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid dispute id")
		return
	}

	var req dto.ResolveDisputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dispute, err := h.disputeService.Resolve(r.Context(), userID, disputeID, req.Outcome, req.Resolution)
	if err != nil {
		switch {
		case errors.Is(err, disputeservice.ErrDisputeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, disputeservice.ErrDisputeClosed), errors.Is(err, lifecycle.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, disputeservice.ErrUnknownOutcome):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDisputeDTO(dispute))
}

func toDisputeDTO(dispute *domain.Dispute) dto.DisputeResponseDTO {
	return dto.DisputeResponseDTO{
		ID:          dispute.ID,
		OrderID:     dispute.OrderID,
		InitiatorID: dispute.InitiatorID,
		Reason:      dispute.Reason,
		Status:      dispute.Status,
		Resolution:  dispute.Resolution,
		ResolvedBy:  dispute.ResolvedBy,
		CreatedAt:   dispute.CreatedAt,
		ResolvedAt:  dispute.ResolvedAt,
	}
}
