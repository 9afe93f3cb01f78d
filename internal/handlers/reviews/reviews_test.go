package reviews

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
	reviewservice "github.com/collabotree/collabotree/internal/service/reviewservice"
	"github.com/collabotree/collabotree/pkg/auth"
	"github.com/collabotree/collabotree/pkg/utils"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
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

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateReviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Review created",
			body: `{"order_id":4,"rating":5,"comment":"great work"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 4, 5, "great work").
					Return(&domain.Review{ID: 6, OrderID: 4, ListingID: 7, BuyerID: 1, Rating: 5, Comment: "great work"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Order not completed",
			body: `{"order_id":4,"rating":5}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 4, 5, "").
					Return(nil, reviewservice.ErrOrderNotCompleted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "order not completed",
		},
		{
			name: "Already reviewed",
			body: `{"order_id":4,"rating":4}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 4, 4, "").
					Return(nil, reviewservice.ErrAlreadyReviewed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "order already reviewed",
		},
		{
			name: "Not the buyer",
			body: `{"order_id":4,"rating":5}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 4, 5, "").
					Return(nil, reviewservice.ErrNotOrderBuyer)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Rating out of range",
			body: `{"order_id":4,"rating":6}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().Create(ctx, 1, 4, 6, "").
					Return(nil, domain.NewValidationError("rating", "must be between 1 and 5"))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest("POST", "/api/reviews", tt.body, 1)
			tt.prepareMock(req.Context())
			rr := httptest.NewRecorder()

			handler.CreateReview(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetListingReviewsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Reviews returned", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/listings/7/reviews", nil)
		req = withURLParam(req, "id", "7")
		service.EXPECT().GetByListing(req.Context(), 7).Return([]domain.Review{
			{ID: 6, ListingID: 7, Rating: 5},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetListingReviews(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.ReviewResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("No reviews", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/listings/7/reviews", nil)
		req = withURLParam(req, "id", "7")
		service.EXPECT().GetByListing(req.Context(), 7).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetListingReviews(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Invalid listing id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/listings/abc/reviews", nil)
		req = withURLParam(req, "id", "abc")
		rr := httptest.NewRecorder()

		handler.GetListingReviews(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
