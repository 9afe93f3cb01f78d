package service

import (
	"github.com/collabotree/collabotree/internal/config"
	"github.com/collabotree/collabotree/internal/pg"
	"github.com/collabotree/collabotree/internal/repo"
	"github.com/collabotree/collabotree/internal/service/authservice"
	"github.com/collabotree/collabotree/internal/service/disputeservice"
	"github.com/collabotree/collabotree/internal/service/hireservice"
	"github.com/collabotree/collabotree/internal/service/listingservice"
	"github.com/collabotree/collabotree/internal/service/orderservice"
	"github.com/collabotree/collabotree/internal/service/reviewservice"
	"github.com/collabotree/collabotree/internal/service/walletservice"
	pkgauth "github.com/collabotree/collabotree/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	ListingService *listingservice.Service
	HireService    *hireservice.Service
	OrderService   *orderservice.Service
	WalletService  *walletservice.Service
	ReviewService  *reviewservice.Service
	DisputeService *disputeservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	listingService := listingservice.New(repos.ListingRepo)
	hireService := hireservice.New(repos.HireRepo, repos.ListingRepo, repos.ContractRepo, repos.NotificationRepo, txManager)
	orderService := orderservice.New(repos.OrderRepo, repos.HireRepo, repos.WalletRepo, repos.DisputeRepo,
		repos.NotificationRepo, txManager, cfg.CommissionPct)
	walletService := walletservice.New(repos.WalletRepo, txManager)
	reviewService := reviewservice.New(repos.ReviewRepo, repos.OrderRepo, repos.HireRepo)
	disputeService := disputeservice.New(repos.DisputeRepo, orderService, txManager)

	return &Services{
		AuthService:    authService,
		ListingService: listingService,
		HireService:    hireService,
		OrderService:   orderService,
		WalletService:  walletService,
		ReviewService:  reviewService,
		DisputeService: disputeService,
	}
}
