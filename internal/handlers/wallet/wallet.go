package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	walletservice "github.com/collabotree/collabotree/internal/service/walletservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	GetEntries(ctx context.Context, userID int) ([]domain.WalletEntry, error)
	Deposit(ctx context.Context, userID int, amountCents int64, cardNumber string) (*domain.WalletEntry, error)
	Withdraw(ctx context.Context, userID int, amountCents int64, cardNumber string) (*domain.WalletEntry, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Current balance derived from the wallet ledger
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{BalanceCents: balance})
}

// GetEntries godoc
//
//	@Summary		Get wallet ledger
//	@Description	All ledger entries for the authorized user, newest first
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WalletEntryResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/entries [get]
func (h *WalletHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.walletService.GetEntries(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.WalletEntryResponseDTO
	for _, entry := range entries {
		response = append(response, toEntryDTO(&entry))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Top up the wallet
//	@Description	Charge an external card and credit the wallet
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.DepositRequestDTO	true	"Deposit request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WalletEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		422	{object}	utils.Response	"Invalid card number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.walletService.Deposit(r.Context(), userID, req.AmountCents, req.CardNumber)
	if err != nil {
		respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEntryDTO(entry))
}

// Withdraw godoc
//
//	@Summary		Withdraw earnings
//	@Description	Move wallet funds out to an external card
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.WithdrawRequestDTO	true	"Withdraw request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WalletEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		422	{object}	utils.Response	"Invalid card number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.walletService.Withdraw(r.Context(), userID, req.AmountCents, req.CardNumber)
	if err != nil {
		respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEntryDTO(entry))
}

func respondWalletError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, walletservice.ErrInvalidCardNumber):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.As(err, &vErr):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toEntryDTO(entry *domain.WalletEntry) dto.WalletEntryResponseDTO {
	return dto.WalletEntryResponseDTO{
		ID:          entry.ID,
		AmountCents: entry.AmountCents,
		Reason:      entry.Reason,
		Reference:   entry.Reference.String(),
		CreatedAt:   entry.CreatedAt,
	}
}
