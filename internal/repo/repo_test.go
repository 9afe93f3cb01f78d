package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ListingRepo)
	assert.NotNil(t, repo.HireRepo)
	assert.NotNil(t, repo.ContractRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.ReviewRepo)
	assert.NotNil(t, repo.DisputeRepo)
	assert.NotNil(t, repo.NotificationRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
