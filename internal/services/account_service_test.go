package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
)

func TestAccountService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	service := NewAccountService(env.accounts)

	created, err := service.Create(context.Background(), &models.Account{
		UserID:  testUser,
		Name:    "Savings",
		Type:    models.AccountTypeSavings,
		Balance: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := service.Get(context.Background(), created.ID, testUser)
	require.NoError(t, err)
	assert.Equal(t, "Savings", got.Name)
	assert.True(t, decimal.NewFromInt(2500).Equal(got.Balance))
}

func TestAccountService_Create_Invalid(t *testing.T) {
	env := newTestEnv(t)
	service := NewAccountService(env.accounts)

	_, err := service.Create(context.Background(), &models.Account{UserID: testUser})
	require.Error(t, err)

	var validationErr *apperrors.ErrValidation
	assert.ErrorAs(t, err, &validationErr)
}

func TestAccountService_Update_IgnoresBalance(t *testing.T) {
	env := newTestEnv(t)
	service := NewAccountService(env.accounts)

	created, err := service.Create(context.Background(), &models.Account{
		UserID:  testUser,
		Name:    "Wallet",
		Type:    models.AccountTypeWallet,
		Balance: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), &models.Account{
		ID:      created.ID,
		UserID:  testUser,
		Name:    "Cash wallet",
		Type:    models.AccountTypeWallet,
		Balance: decimal.NewFromInt(99999),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cash wallet", updated.Name)
	assert.True(t, decimal.NewFromInt(100).Equal(updated.Balance))
}

func TestAccountService_Delete(t *testing.T) {
	env := newTestEnv(t)
	service := NewAccountService(env.accounts)

	created, err := service.Create(context.Background(), &models.Account{
		UserID: testUser,
		Name:   "Temporary",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID, testUser))

	err = service.Delete(context.Background(), created.ID, testUser)
	assert.True(t, apperrors.IsNotFound(err))
}
