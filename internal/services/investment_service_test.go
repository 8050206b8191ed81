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

func TestInvestmentService_Create_DefaultsCurrentValue(t *testing.T) {
	env := newTestEnv(t)
	service := NewInvestmentService(env.investments)

	created, err := service.Create(context.Background(), &models.Investment{
		UserID:       testUser,
		Name:         "Index fund",
		Type:         "stocks",
		InitialValue: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000).Equal(created.CurrentValue))
	assert.True(t, decimal.Zero.Equal(created.Performance.AbsoluteReturn))
	assert.True(t, decimal.Zero.Equal(created.Performance.PercentageReturn))
}

func TestInvestmentService_Create_DerivesPerformance(t *testing.T) {
	env := newTestEnv(t)
	service := NewInvestmentService(env.investments)

	created, err := service.Create(context.Background(), &models.Investment{
		UserID:       testUser,
		Name:         "Bond ladder",
		Type:         "bonds",
		InitialValue: decimal.NewFromInt(1000),
		CurrentValue: decimal.NewFromInt(1200),
		Performance: models.Performance{
			// Caller-supplied figures are discarded.
			AbsoluteReturn:   decimal.NewFromInt(9999),
			PercentageReturn: decimal.NewFromInt(9999),
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(200).Equal(created.Performance.AbsoluteReturn))
	assert.True(t, decimal.NewFromInt(20).Equal(created.Performance.PercentageReturn))
}

func TestInvestmentService_Create_Invalid(t *testing.T) {
	env := newTestEnv(t)
	service := NewInvestmentService(env.investments)

	_, err := service.Create(context.Background(), &models.Investment{UserID: testUser})
	require.Error(t, err)

	var validationErr *apperrors.ErrValidation
	assert.ErrorAs(t, err, &validationErr)
}

func TestInvestmentService_Delete(t *testing.T) {
	env := newTestEnv(t)
	service := NewInvestmentService(env.investments)

	created, err := service.Create(context.Background(), &models.Investment{
		UserID:       testUser,
		Name:         "Closed position",
		InitialValue: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID, testUser))
	err = service.Delete(context.Background(), created.ID, testUser)
	assert.True(t, apperrors.IsNotFound(err))
}
