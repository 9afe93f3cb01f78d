package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/dto"
	"github.com/collabotree/collabotree/internal/lifecycle"
	orderservice "github.com/collabotree/collabotree/internal/service/orderservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target, body string, userID int, role string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order created",
			body: `{"hire_request_id":3}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 3).Return(&domain.Order{
					ID:          4,
					OrderNumber: "4821",
					BuyerID:     1,
					StudentID:   2,
					Status:      lifecycle.OrderPending,
					AmountCents: 5000,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Hire request not found",
			body: `{"hire_request_id":3}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 3).Return(nil, orderservice.ErrHireRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "hire request not found",
		},
		{
			name: "Another buyer's request",
			body: `{"hire_request_id":3}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 3).Return(nil, orderservice.ErrNotRequestBuyer)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "hire request belongs to another buyer",
		},
		{
			name: "Request not accepted",
			body: `{"hire_request_id":3}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 3).Return(nil, orderservice.ErrHireRequestNotAccepted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "hire request not accepted",
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
			req := authedRequest("POST", "/api/orders", tt.body, 1, "buyer")
			tt.prepareMock(req.Context())
			rr := httptest.NewRecorder()

			handler.CreateOrder(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestTransitionOrderHandler(t *testing.T) {
	handler, service := NewMock(t)
	buyer := lifecycle.Actor{UserID: 1, Role: lifecycle.RoleBuyer}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Buyer pays",
			body: `{"status":"PAID"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Transition(ctx, buyer, 4, lifecycle.OrderPaid, "").
					Return(&domain.Order{ID: 4, Status: lifecycle.OrderPaid}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Illegal transition",
			body: `{"status":"COMPLETED"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Transition(ctx, buyer, 4, lifecycle.OrderCompleted, "").
					Return(nil, lifecycle.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "transition not legal from current state",
		},
		{
			name: "Wrong actor",
			body: `{"status":"IN_PROGRESS"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Transition(ctx, buyer, 4, lifecycle.OrderInProgress, "").
					Return(nil, lifecycle.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "actor not permitted for this transition",
		},
		{
			name: "Insufficient funds",
			body: `{"status":"PAID"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Transition(ctx, buyer, 4, lifecycle.OrderPaid, "").
					Return(nil, orderservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient wallet balance",
		},
		{
			name:          "Unknown target status",
			body:          `{"status":"TELEPORTED"}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown target status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest("POST", "/api/orders/4/transition", tt.body, 1, "buyer")
			req = withURLParam(req, "id", "4")
			tt.prepareMock(req.Context())
			rr := httptest.NewRecorder()

			handler.TransitionOrder(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Orders returned", func(t *testing.T) {
		req := authedRequest("GET", "/api/orders", "", 1, "buyer")
		service.EXPECT().GetOrders(req.Context(), 1).Return([]domain.Order{
			{ID: 4, OrderNumber: "4821", Status: lifecycle.OrderPaid, AmountCents: 5000},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.OrderResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "4821", resp[0].OrderNumber)
	})

	t.Run("No orders", func(t *testing.T) {
		req := authedRequest("GET", "/api/orders", "", 1, "buyer")
		service.EXPECT().GetOrders(req.Context(), 1).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetOrders(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestGetOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		req := authedRequest("GET", "/api/orders/4", "", 1, "buyer")
		req = withURLParam(req, "id", "4")
		service.EXPECT().GetOrder(req.Context(), 1, 4).
			Return(&domain.Order{ID: 4, OrderNumber: "4821"}, nil)
		rr := httptest.NewRecorder()

		handler.GetOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		req := authedRequest("GET", "/api/orders/4", "", 1, "buyer")
		req = withURLParam(req, "id", "4")
		service.EXPECT().GetOrder(req.Context(), 1, 4).Return(nil, orderservice.ErrOrderNotFound)
		rr := httptest.NewRecorder()

		handler.GetOrder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
