package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	walletservice "github.com/collabotree/collabotree/internal/service/walletservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	req := authedRequest("GET", "/api/wallet/balance", "", 1)
	service.EXPECT().GetBalance(req.Context(), 1).Return(int64(12500), nil)
	rr := httptest.NewRecorder()

	handler.GetBalance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.BalanceResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(12500), resp.BalanceCents)
}

func TestGetEntriesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Entries returned", func(t *testing.T) {
		req := authedRequest("GET", "/api/wallet/entries", "", 1)
		service.EXPECT().GetEntries(req.Context(), 1).Return([]domain.WalletEntry{
			{ID: 1, AmountCents: 5000, Reason: "deposit", Reference: uuid.New()},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.WalletEntryResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "deposit", resp[0].Reason)
	})

	t.Run("Empty ledger", func(t *testing.T) {
		req := authedRequest("GET", "/api/wallet/entries", "", 1)
		service.EXPECT().GetEntries(req.Context(), 1).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetEntries(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: `{"amount_cents":5000,"card_number":"4561261212345467"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Deposit(ctx, 1, int64(5000), "4561261212345467").
					Return(&domain.WalletEntry{ID: 1, AmountCents: 5000, Reason: "deposit"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid card number",
			body: `{"amount_cents":5000,"card_number":"123"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Deposit(ctx, 1, int64(5000), "123").
					Return(nil, walletservice.ErrInvalidCardNumber)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid card number",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest("POST", "/api/wallet/deposit", tt.body, 1)
			tt.prepareMock(req.Context())
			rr := httptest.NewRecorder()

			handler.Deposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful withdrawal", func(t *testing.T) {
		req := authedRequest("POST", "/api/wallet/withdraw", `{"amount_cents":4000,"card_number":"4561261212345467"}`, 1)
		service.EXPECT().Withdraw(req.Context(), 1, int64(4000), "4561261212345467").
			Return(&domain.WalletEntry{ID: 2, AmountCents: -4000, Reason: "withdrawal"}, nil)
		rr := httptest.NewRecorder()

		handler.Withdraw(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		req := authedRequest("POST", "/api/wallet/withdraw", `{"amount_cents":4000,"card_number":"4561261212345467"}`, 1)
		service.EXPECT().Withdraw(req.Context(), 1, int64(4000), "4561261212345467").
			Return(nil, walletservice.ErrInsufficientBalance)
		rr := httptest.NewRecorder()

		handler.Withdraw(rr, req)

		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "insufficient balance", resp.Message)
	})
}
