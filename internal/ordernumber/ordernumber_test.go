package ordernumber

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func takenFromSet(set map[string]bool) TakenFunc {
	return func(_ context.Context, number string) (bool, error) {
		return set[number], nil
	}
}

func TestAllocateReturnsFourDigitNumber(t *testing.T) {
	a := New()
	got, err := a.Allocate(context.Background(), takenFromSet(nil))

	assert.NoError(t, err)
	assert.Len(t, got, 4)
	n, err := strconv.Atoi(got)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1000)
	assert.LessOrEqual(t, n, 9999)
}

func TestAllocateNeverRepeats(t *testing.T) {
	a := New()
	used := map[string]bool{}

	for i := 0; i < 500; i++ {
		got, err := a.Allocate(context.Background(), takenFromSet(used))
		assert.NoError(t, err)
		assert.False(t, used[got], "allocated %s twice", got)
		used[got] = true
	}
}

func TestAllocateFallsBackToTimestamp(t *testing.T) {
	// Every random draw collides; the timestamp candidate is free.
	a := New()
	a.randInt = func(int) int { return 0 } // always 1000
	a.now = func() time.Time { return time.Unix(1234, 0) }

	used := map[string]bool{"1000": true}
	got, err := a.Allocate(context.Background(), takenFromSet(used))

	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(1000+1234%9000), got)
}

func TestAllocateScansWhenOneValueFree(t *testing.T) {
	// 8999 of 9000 values used: random and timestamp tiers collide, the
	// linear scan must find the single free value.
	const free = 7777

	a := New()
	used := map[string]bool{}
	for n := 1000; n <= 9999; n++ {
		if n != free {
			used[strconv.Itoa(n)] = true
		}
	}

	got, err := a.Allocate(context.Background(), takenFromSet(used))

	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(free), got)
}

func TestAllocateScanReturnsLowestFree(t *testing.T) {
	a := New()
	a.randInt = func(int) int { return 0 }
	a.now = func() time.Time { return time.Unix(0, 0) }

	used := map[string]bool{"1000": true, "1001": true}
	got, err := a.Allocate(context.Background(), takenFromSet(used))

	assert.NoError(t, err)
	assert.Equal(t, "1002", got)
}

func TestAllocateExhaustedKeyspace(t *testing.T) {
	a := New()
	used := map[string]bool{}
	for n := 1000; n <= 9999; n++ {
		used[strconv.Itoa(n)] = true
	}

	_, err := a.Allocate(context.Background(), takenFromSet(used))

	assert.ErrorIs(t, err, ErrKeyspaceExhausted)
}

func TestAllocatePropagatesTakenError(t *testing.T) {
	a := New()
	want := errors.New("database error")
	_, err := a.Allocate(context.Background(), func(context.Context, string) (bool, error) {
		return false, want
	})

	assert.ErrorIs(t, err, want)
}

func TestAllocateCustomRange(t *testing.T) {
	a := Allocator{Min: 10, Max: 12, MaxAttempts: 5}
	used := map[string]bool{"10": true, "11": true}

	got, err := a.Allocate(context.Background(), takenFromSet(used))

	assert.NoError(t, err)
	assert.Equal(t, "12", got)
}
