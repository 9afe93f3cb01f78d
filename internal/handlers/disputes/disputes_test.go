package disputes

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
	disputeservice "github.com/collabotree/collabotree/internal/service/disputeservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

func NewMock(t *testing.T) (*DisputeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, domain.RoleAdmin)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetOpenDisputesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Disputes returned", func(t *testing.T) {
		req := authedRequest("GET", "/api/admin/disputes", "", 99)
		service.EXPECT().GetOpen(req.Context()).Return([]domain.Dispute{
			{ID: 5, OrderID: 4, InitiatorID: 1, Reason: "work never delivered", Status: "OPEN"},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetOpenDisputes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.DisputeResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "OPEN", resp[0].Status)
	})

	t.Run("No open disputes", func(t *testing.T) {
		req := authedRequest("GET", "/api/admin/disputes", "", 99)
		service.EXPECT().GetOpen(req.Context()).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetOpenDisputes(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestResolveDisputeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Refund resolution",
			body: `{"outcome":"refund","resolution":"buyer was right"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Resolve(ctx, 99, 5, disputeservice.OutcomeRefund, "buyer was right").
					Return(&domain.Dispute{ID: 5, Status: "RESOLVED", Resolution: "buyer was right"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown outcome",
			body: `{"outcome":"split","resolution":"half each"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Resolve(ctx, 99, 5, "split", "half each").
					Return(nil, disputeservice.ErrUnknownOutcome)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unknown resolution outcome",
		},
		{
			name: "Already resolved",
			body: `{"outcome":"release","resolution":"done before"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Resolve(ctx, 99, 5, disputeservice.OutcomeRelease, "done before").
					Return(nil, disputeservice.ErrDisputeClosed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "dispute already resolved",
		},
		{
			name: "Not found",
			body: `{"outcome":"refund","resolution":"x"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Resolve(ctx, 99, 5, disputeservice.OutcomeRefund, "x").
					Return(nil, disputeservice.ErrDisputeNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "dispute not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest("POST", "/api/admin/disputes/5/resolve", tt.body, 99)
			req = withURLParam(req, "id", "5")
			tt.prepareMock(req.Context())
			rr := httptest.NewRecorder()

			handler.ResolveDispute(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
