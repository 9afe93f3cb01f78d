package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	"github.com/collabotree/collabotree/internal/lifecycle"
	orderservice "github.com/collabotree/collabotree/internal/service/orderservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, buyerID, hireRequestID int) (*domain.Order, error)
	Transition(ctx context.Context, actor lifecycle.Actor, orderID int, target, reason string) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID int) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order from an accepted hire request
//	@Description	Allocates a unique four digit order number and opens the order in PENDING
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Create order request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Hire request belongs to another buyer"
//	@Failure		404	{object}	utils.Response	"Hire request not found"
//	@Failure		409	{object}	utils.Response	"Hire request not accepted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, req.HireRequestID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrHireRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrNotRequestBuyer):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orderservice.ErrHireRequestNotAccepted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

// TransitionOrder godoc
//
//	@Summary		Move an order along its lifecycle
//	@Description	Applies one status transition, with payment, payout or refund side effects
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order ID"
//	@Param			request	body	dto.TransitionOrderRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or unknown status"
//	@Failure		402	{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		403	{object}	utils.Response	"Actor not permitted"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Transition not legal from current state"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/transition [post]
func (h *OrderHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.TransitionOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !slices.Contains(lifecycle.OrderTargets(), req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown target status")
		return
	}

	actor := lifecycle.Actor{UserID: userID, Role: lifecycle.Role(role)}
	order, err := h.orderService.Transition(r.Context(), actor, orderID, req.Status, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, lifecycle.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orderservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders the authorized user is a party to
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.OrderResponseDTO
	for _, order := range orders {
		response = append(response, toOrderDTO(&order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one order
//	@Description	Retrieve a single order the authorized user is a party to
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		BuyerID:     order.BuyerID,
		StudentID:   order.StudentID,
		Status:      order.Status,
		AmountCents: order.AmountCents,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
