package hireservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/internal/lifecycle"
	"github.com/collabotree/collabotree/internal/pg"
)

type HireRepo interface {
	Create(ctx context.Context, hire *domain.HireRequest) (*domain.HireRequest, error)
	FindByID(ctx context.Context, id int) (*domain.HireRequest, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.HireRequest, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.HireRequest, error)
}

type ListingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
}

type ContractRepo interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
	FindByHireRequestID(ctx context.Context, hireRequestID int) (*domain.Contract, error)
	UpdateProgress(ctx context.Context, id int, progress, status string, completedAt *time.Time) (*domain.Contract, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	hireRepo         HireRepo
	listingRepo      ListingRepo
	contractRepo     ContractRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(hireRepo HireRepo, listingRepo ListingRepo, contractRepo ContractRepo,
	notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		hireRepo:         hireRepo,
		listingRepo:      listingRepo,
		contractRepo:     contractRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

var (
	ErrHireRequestNotFound = errors.New("hire request not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrListingNotApproved  = errors.New("listing not approved")
	ErrOwnListing          = errors.New("cannot hire for own listing")
	ErrContractNotFound    = errors.New("contract not found")
	ErrContractExists      = errors.New("contract already exists for hire request")
	ErrNotRequestStudent   = errors.New("hire request addresses another student")
	ErrNotParty            = errors.New("not a party to this contract")
)

func (s *Service) CreateRequest(ctx context.Context, buyerID, listingID int, message string, priceCents int64) (*domain.HireRequest, error) {
	if priceCents < 0 {
		return nil, domain.NewValidationError("price_cents", "must not be negative")
	}

	var created *domain.HireRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		listing, err := s.listingRepo.FindByID(ctx, listingID)
		if err != nil {
			return err
		}
		if listing == nil {
			return ErrListingNotFound
		}
		if listing.Status != domain.ListingApproved {
			return ErrListingNotApproved
		}
		if listing.StudentID == buyerID {
			return ErrOwnListing
		}

		// A proposed price of zero means the listing price applies.
		price := priceCents
		if price == 0 {
			price = listing.PriceCents
		}

		hire := &domain.HireRequest{
			ListingID:  listing.ID,
			BuyerID:    buyerID,
			StudentID:  listing.StudentID,
			Message:    message,
			PriceCents: price,
			Status:     lifecycle.HirePending,
			CreatedAt:  time.Now(),
		}
		if _, err := s.hireRepo.Create(ctx, hire); err != nil {
			return err
		}
		created = hire

		return s.notify(ctx, listing.StudentID, "hire_requested", listing.Title)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition applies one hire request lifecycle edge on behalf of actor.
func (s *Service) Transition(ctx context.Context, actor lifecycle.Actor, hireRequestID int, target string) (*domain.HireRequest, error) {
	var updated *domain.HireRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		hire, err := s.hireRepo.FindByID(ctx, hireRequestID)
		if err != nil {
			return err
		}
		if hire == nil {
			return ErrHireRequestNotFound
		}

		parties := lifecycle.Parties{BuyerID: hire.BuyerID, StudentID: hire.StudentID}
		if err := lifecycle.Check(lifecycle.KindHireRequest, hire.Status, target, actor, parties); err != nil {
			return err
		}

		updated, err = s.hireRepo.UpdateStatus(ctx, hire.ID, target)
		if err != nil {
			return err
		}

		other := hire.StudentID
		if actor.UserID != hire.BuyerID {
			other = hire.BuyerID
		}
		return s.notify(ctx, other, "hire_"+target, hire.Message)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetRequests(ctx context.Context, userID int) ([]domain.HireRequest, error) {
	hires, err := s.hireRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get hire requests", zap.Error(err))
		return nil, err
	}
	return hires, nil
}

// CreateContract formalizes an ACCEPTED hire request. At most one contract
// exists per request; the unique constraint on hire_request_id backs this up.
func (s *Service) CreateContract(ctx context.Context, studentID, hireRequestID int, deliverables string, deadline time.Time, signature string) (*domain.Contract, error) {
	if deliverables == "" {
		return nil, domain.NewValidationError("deliverables", "must not be empty")
	}
	if signature == "" {
		return nil, domain.NewValidationError("signature", "must not be empty")
	}

	var created *domain.Contract
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		hire, err := s.hireRepo.FindByID(ctx, hireRequestID)
		if err != nil {
			return err
		}
		if hire == nil {
			return ErrHireRequestNotFound
		}
		if hire.StudentID != studentID {
			return ErrNotRequestStudent
		}
		if hire.Status != lifecycle.HireAccepted {
			return lifecycle.ErrInvalidTransition
		}

		existing, err := s.contractRepo.FindByHireRequestID(ctx, hire.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrContractExists
		}

		contract := &domain.Contract{
			HireRequestID: hire.ID,
			Deliverables:  deliverables,
			Deadline:      deadline,
			Signature:     signature,
			Status:        lifecycle.ContractActive,
			CreatedAt:     time.Now(),
		}
		if _, err := s.contractRepo.Create(ctx, contract); err != nil {
			return err
		}
		created = contract

		return s.notify(ctx, hire.BuyerID, "contract_created", deliverables)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProgress appends a progress note. With completed set the terminal
// completion is bundled into the same call.
func (s *Service) UpdateProgress(ctx context.Context, actor lifecycle.Actor, contractID int, note string, completed bool) (*domain.Contract, error) {
	var updated *domain.Contract
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		contract, err := s.contractRepo.FindByID(ctx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return ErrContractNotFound
		}
		hire, err := s.hireRepo.FindByID(ctx, contract.HireRequestID)
		if err != nil {
			return err
		}
		if hire == nil {
			return ErrHireRequestNotFound
		}

		parties := lifecycle.Parties{BuyerID: hire.BuyerID, StudentID: hire.StudentID}
		if completed {
			if err := lifecycle.Check(lifecycle.KindContract, contract.Status, lifecycle.ContractCompleted, actor, parties); err != nil {
				return err
			}
		} else {
			if contract.Status != lifecycle.ContractActive {
				return lifecycle.ErrInvalidTransition
			}
			if actor.UserID != hire.StudentID {
				return lifecycle.ErrForbidden
			}
		}

		progress := contract.Progress
		if note != "" {
			if progress != "" {
				progress += "\n"
			}
			progress += note
		}

		status := contract.Status
		var completedAt *time.Time
		if completed {
			status = lifecycle.ContractCompleted
			now := time.Now()
			completedAt = &now
		}

		updated, err = s.contractRepo.UpdateProgress(ctx, contract.ID, progress, status, completedAt)
		if err != nil {
			return err
		}

		return s.notify(ctx, hire.BuyerID, "contract_progress", note)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetContract(ctx context.Context, userID, contractID int) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	hire, err := s.hireRepo.FindByID(ctx, contract.HireRequestID)
	if err != nil {
		return nil, err
	}
	if hire == nil {
		return nil, ErrHireRequestNotFound
	}
	if hire.BuyerID != userID && hire.StudentID != userID {
		return nil, ErrNotParty
	}
	return contract, nil
}

func (s *Service) notify(ctx context.Context, userID int, kind, payload string) error {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:    userID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
	return err
}
