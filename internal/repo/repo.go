package repo

import (
	"github.com/collabotree/collabotree/internal/pg"
	contractrepo "github.com/collabotree/collabotree/internal/repo/contract-repo"
	disputerepo "github.com/collabotree/collabotree/internal/repo/dispute-repo"
	hirerepo "github.com/collabotree/collabotree/internal/repo/hire-repo"
	listingrepo "github.com/collabotree/collabotree/internal/repo/listing-repo"
	notificationrepo "github.com/collabotree/collabotree/internal/repo/notification-repo"
	orderrepo "github.com/collabotree/collabotree/internal/repo/order-repo"
	reviewrepo "github.com/collabotree/collabotree/internal/repo/review-repo"
	userrepo "github.com/collabotree/collabotree/internal/repo/user-repo"
	walletrepo "github.com/collabotree/collabotree/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	ListingRepo      *listingrepo.Repository
	HireRepo         *hirerepo.Repository
	ContractRepo     *contractrepo.Repository
	OrderRepo        *orderrepo.Repository
	WalletRepo       *walletrepo.Repository
	ReviewRepo       *reviewrepo.Repository
	DisputeRepo      *disputerepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ListingRepo:      listingrepo.New(conn),
		HireRepo:         hirerepo.New(conn),
		ContractRepo:     contractrepo.New(conn),
		OrderRepo:        orderrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		ReviewRepo:       reviewrepo.New(conn),
		DisputeRepo:      disputerepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
