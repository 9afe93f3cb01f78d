// Package lifecycle encodes the permitted status transitions for hire
// requests, contracts and orders, and which party may trigger each edge.
package lifecycle

import "errors"

type Kind string

const (
	KindHireRequest Kind = "hire_request"
	KindContract    Kind = "contract"
	KindOrder       Kind = "order"
)

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Hire request statuses.
const (
	HirePending   = "PENDING"
	HireAccepted  = "ACCEPTED"
	HireRejected  = "REJECTED"
	HireCancelled = "CANCELLED"
)

// Contract statuses.
const (
	ContractActive    = "ACTIVE"
	ContractCompleted = "COMPLETED"
)

// Order statuses.
const (
	OrderPending    = "PENDING"
	OrderPaid       = "PAID"
	OrderInProgress = "IN_PROGRESS"
	OrderDelivered  = "DELIVERED"
	OrderCompleted  = "COMPLETED"
	OrderCancelled  = "CANCELLED"
	OrderDisputed   = "DISPUTED"
)

var (
	ErrForbidden         = errors.New("actor not permitted for this transition")
	ErrInvalidTransition = errors.New("transition not legal from current state")
)

// Actor is the authenticated user attempting a transition.
type Actor struct {
	UserID int
	Role   Role
}

// Parties are the two sides of the entity being transitioned.
type Parties struct {
	BuyerID   int
	StudentID int
}

type party int

const (
	partyBuyer party = iota
	partyStudent
	partyAdmin
)

type edge struct {
	kind Kind
	from string
	to   string
}

var transitions = map[edge][]party{
	// Hire request: only the addressed student decides, either side cancels.
	{KindHireRequest, HirePending, HireAccepted}:   {partyStudent},
	{KindHireRequest, HirePending, HireRejected}:   {partyStudent},
	{KindHireRequest, HirePending, HireCancelled}:  {partyBuyer, partyStudent},
	{KindHireRequest, HireAccepted, HireCancelled}: {partyBuyer, partyStudent},

	// Contract: completion is terminal and student-driven.
	{KindContract, ContractActive, ContractCompleted}: {partyStudent},

	// Order happy path.
	{KindOrder, OrderPending, OrderPaid}:          {partyBuyer},
	{KindOrder, OrderPaid, OrderInProgress}:       {partyStudent},
	{KindOrder, OrderInProgress, OrderDelivered}:  {partyStudent},
	{KindOrder, OrderDelivered, OrderCompleted}:   {partyBuyer, partyAdmin},

	// Any non-terminal order state may be cancelled or disputed.
	{KindOrder, OrderPending, OrderCancelled}:    {partyBuyer, partyStudent, partyAdmin},
	{KindOrder, OrderPaid, OrderCancelled}:       {partyBuyer, partyStudent, partyAdmin},
	{KindOrder, OrderInProgress, OrderCancelled}: {partyBuyer, partyStudent, partyAdmin},
	{KindOrder, OrderDelivered, OrderCancelled}:  {partyBuyer, partyStudent, partyAdmin},
	{KindOrder, OrderPending, OrderDisputed}:     {partyBuyer, partyStudent},
	{KindOrder, OrderPaid, OrderDisputed}:        {partyBuyer, partyStudent},
	{KindOrder, OrderInProgress, OrderDisputed}:  {partyBuyer, partyStudent},
	{KindOrder, OrderDelivered, OrderDisputed}:   {partyBuyer, partyStudent},

	// Dispute resolution is admin only.
	{KindOrder, OrderDisputed, OrderCancelled}: {partyAdmin},
	{KindOrder, OrderDisputed, OrderCompleted}: {partyAdmin},
}

// Check validates one transition. The edge is checked before the actor, so
// an illegal edge reports ErrInvalidTransition regardless of who asks.
// Re-entering the current state is never a no-op.
func Check(kind Kind, from, to string, actor Actor, parties Parties) error {
	allowed, ok := transitions[edge{kind, from, to}]
	if !ok {
		return ErrInvalidTransition
	}
	for _, p := range allowed {
		switch p {
		case partyBuyer:
			if actor.UserID == parties.BuyerID {
				return nil
			}
		case partyStudent:
			if actor.UserID == parties.StudentID {
				return nil
			}
		case partyAdmin:
			if actor.Role == RoleAdmin {
				return nil
			}
		}
	}
	return ErrForbidden
}

// OrderTargets lists the statuses an order transition endpoint accepts.
func OrderTargets() []string {
	return []string{OrderPaid, OrderInProgress, OrderDelivered, OrderCompleted, OrderCancelled, OrderDisputed}
}
