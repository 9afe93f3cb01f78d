package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/config"
	"github.com/collabotree/collabotree/internal/pg"
	"github.com/collabotree/collabotree/internal/repo"
	"github.com/collabotree/collabotree/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB), pg.NewMockTXManager(ctrl), &config.Config{CommissionPct: 10})

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockListingHandler := NewMockListingHandler(ctrl)
	mockHireHandler := NewMockHireHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockReviewHandler := NewMockReviewHandler(ctrl)
	mockDisputeHandler := NewMockDisputeHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockListingHandler.EXPECT().GetListings(gomock.Any(), gomock.Any()).AnyTimes()
	mockListingHandler.EXPECT().GetListing(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().GetListingReviews(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		ListingHandler: mockListingHandler,
		HireHandler:    mockHireHandler,
		OrderHandler:   mockOrderHandler,
		WalletHandler:  mockWalletHandler,
		ReviewHandler:  mockReviewHandler,
		DisputeHandler: mockDisputeHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/listings", http.StatusOK},
		{"GET", "/api/listings/7", http.StatusOK},
		{"GET", "/api/listings/7/reviews", http.StatusOK},
		{"POST", "/api/listings", http.StatusUnauthorized},
		{"GET", "/api/listings/mine", http.StatusUnauthorized},
		{"POST", "/api/hire-requests", http.StatusUnauthorized},
		{"GET", "/api/hire-requests", http.StatusUnauthorized},
		{"POST", "/api/contracts", http.StatusUnauthorized},
		{"POST", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/wallet/balance", http.StatusUnauthorized},
		{"POST", "/api/wallet/deposit", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdraw", http.StatusUnauthorized},
		{"POST", "/api/reviews", http.StatusUnauthorized},
		{"GET", "/api/admin/listings/pending", http.StatusUnauthorized},
		{"GET", "/api/admin/disputes", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
