package pg

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestManagerBeginCommits(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	m := NewTXManager(mockDB)
	called := false
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, txFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestManagerBeginRollsBackAndPropagatesError(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectBegin()
	mockDB.ExpectRollback()

	m := NewTXManager(mockDB)
	want := errors.New("work failed")
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestManagerNestedBeginJoinsOuterTx(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	// A single Begin/Commit pair: the inner Begin must not open a second tx.
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	m := NewTXManager(mockDB)
	inner := false
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		return m.Begin(ctx, func(ctx context.Context) error {
			inner = true
			return nil
		})
	})

	assert.NoError(t, err)
	assert.True(t, inner)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestManagerBeginFails(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectBegin().WillReturnError(errors.New("no connection"))

	m := NewTXManager(mockDB)
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.Error(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
