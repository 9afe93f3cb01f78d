// Package ordernumber allocates human-facing order numbers from a bounded
// decimal keyspace. Numbers are drawn at random so the sequence reveals
// nothing about volume; a timestamp candidate and an exhaustive scan bound
// the worst case as the space fills up.
package ordernumber

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"
)

// ErrKeyspaceExhausted means every value in the range is in use. This is
// fatal and non-retriable: the numbering scheme itself has to be widened.
var ErrKeyspaceExhausted = errors.New("order number keyspace exhausted")

// TakenFunc reports whether a candidate number is already in use. It must
// run against the caller's transactional context so the check and the
// eventual insert observe the same state.
type TakenFunc func(ctx context.Context, number string) (bool, error)

// Allocator is a reusable strategy for bounded-keyspace id allocation,
// parameterized by range and retry budget.
type Allocator struct {
	Min         int
	Max         int
	MaxAttempts int

	randInt func(n int) int
	now     func() time.Time
}

// New returns the order-number allocator: 4-digit values in [1000, 9999]
// with a budget of 100 random draws.
func New() Allocator {
	return Allocator{Min: 1000, Max: 9999, MaxAttempts: 100}
}

// Allocate returns an unused number or ErrKeyspaceExhausted. Three tiers:
// random draws up to the attempt budget, then a timestamp-derived candidate,
// then an ascending scan of the full range.
func (a Allocator) Allocate(ctx context.Context, taken TakenFunc) (string, error) {
	randInt := a.randInt
	if randInt == nil {
		randInt = rand.IntN
	}
	now := a.now
	if now == nil {
		now = time.Now
	}
	size := a.Max - a.Min + 1

	for attempt := 0; attempt < a.MaxAttempts; attempt++ {
		candidate := strconv.Itoa(a.Min + randInt(size))
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}

	candidate := strconv.Itoa(a.Min + int(now().Unix())%size)
	used, err := taken(ctx, candidate)
	if err != nil {
		return "", err
	}
	if !used {
		return candidate, nil
	}

	for n := a.Min; n <= a.Max; n++ {
		candidate := strconv.Itoa(n)
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}

	return "", ErrKeyspaceExhausted
}
