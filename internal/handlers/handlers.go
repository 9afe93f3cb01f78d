package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/collabotree/collabotree/docs"
	"github.com/collabotree/collabotree/internal/domain"
	authhandlers "github.com/collabotree/collabotree/internal/handlers/auth"
	disputehandlers "github.com/collabotree/collabotree/internal/handlers/disputes"
	hirehandlers "github.com/collabotree/collabotree/internal/handlers/hire"
	listinghandlers "github.com/collabotree/collabotree/internal/handlers/listings"
	orderhandlers "github.com/collabotree/collabotree/internal/handlers/orders"
	reviewhandlers "github.com/collabotree/collabotree/internal/handlers/reviews"
	wallethandlers "github.com/collabotree/collabotree/internal/handlers/wallet"
	"github.com/collabotree/collabotree/internal/service"
	"github.com/collabotree/collabotree/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ListingHandler interface {
	CreateListing(w http.ResponseWriter, r *http.Request)
	GetListings(w http.ResponseWriter, r *http.Request)
	GetMyListings(w http.ResponseWriter, r *http.Request)
	GetPendingListings(w http.ResponseWriter, r *http.Request)
	GetListing(w http.ResponseWriter, r *http.Request)
	ModerateListing(w http.ResponseWriter, r *http.Request)
}

type HireHandler interface {
	CreateHireRequest(w http.ResponseWriter, r *http.Request)
	TransitionHireRequest(w http.ResponseWriter, r *http.Request)
	GetHireRequests(w http.ResponseWriter, r *http.Request)
	CreateContract(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	TransitionOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	GetListingReviews(w http.ResponseWriter, r *http.Request)
}

type DisputeHandler interface {
	GetOpenDisputes(w http.ResponseWriter, r *http.Request)
	ResolveDispute(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ListingHandler ListingHandler
	HireHandler    HireHandler
	OrderHandler   OrderHandler
	WalletHandler  WalletHandler
	ReviewHandler  ReviewHandler
	DisputeHandler DisputeHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ListingHandler: listinghandlers.New(s.ListingService),
		HireHandler:    hirehandlers.New(s.HireService),
		OrderHandler:   orderhandlers.New(s.OrderService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		ReviewHandler:  reviewhandlers.New(s.ReviewService),
		DisputeHandler: disputehandlers.New(s.DisputeService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Get("/listings", h.ListingHandler.GetListings)
		r.Get("/listings/{id}", h.ListingHandler.GetListing)
		r.Get("/listings/{id}/reviews", h.ReviewHandler.GetListingReviews)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Post("/listings", h.ListingHandler.CreateListing)
			r.Get("/listings/mine", h.ListingHandler.GetMyListings)

			r.Route("/hire-requests", func(r chi.Router) {
				r.Post("/", h.HireHandler.CreateHireRequest)
				r.Get("/", h.HireHandler.GetHireRequests)
				r.Post("/{id}/transition", h.HireHandler.TransitionHireRequest)
			})
			r.Route("/contracts", func(r chi.Router) {
				r.Post("/", h.HireHandler.CreateContract)
				r.Get("/{id}", h.HireHandler.GetContract)
				r.Post("/{id}/progress", h.HireHandler.UpdateProgress)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Post("/{id}/transition", h.OrderHandler.TransitionOrder)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/entries", h.WalletHandler.GetEntries)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Post("/reviews", h.ReviewHandler.CreateReview)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Get("/listings/pending", h.ListingHandler.GetPendingListings)
				r.Post("/listings/{id}/moderate", h.ListingHandler.ModerateListing)
				r.Get("/disputes", h.DisputeHandler.GetOpenDisputes)
				r.Post("/disputes/{id}/resolve", h.DisputeHandler.ResolveDispute)
			})
		})
	})

	return r
}
