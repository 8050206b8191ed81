package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutoledger/pluto/internal/models"
)

func TestTransactionService_Stats_WeekOverview(t *testing.T) {
	env := newTestEnv(t)
	account := env.seedAccount(t, testUser, decimal.NewFromInt(100000))
	salary := env.seedCategory(t, testUser, "Salary")
	food := env.seedCategory(t, testUser, "Food")
	investment := env.seedInvestment(t, testUser, "crypto",
		decimal.NewFromInt(1000), decimal.NewFromInt(1000))

	now := time.Now()
	yesterday := dateString(now.AddDate(0, 0, -1))
	twoDaysAgo := dateString(now.AddDate(0, 0, -2))
	tenDaysAgo := dateString(now.AddDate(0, 0, -10))

	seed := []*TransactionInput{
		{Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Date: yesterday, Account: account.ID, Category: salary.ID},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(200), Date: twoDaysAgo, Account: account.ID, Category: food.ID},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(50), Date: twoDaysAgo, Account: account.ID},
		{Type: models.TypeInvestment, Amount: decimal.NewFromInt(300), Date: yesterday, Account: account.ID, Investment: investment.ID},
		// Outside the week window, must not count.
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(999), Date: tenDaysAgo, Account: account.ID},
	}
	for _, in := range seed {
		_, err := env.service.Create(context.Background(), testUser, in)
		require.NoError(t, err)
	}

	stats, err := env.service.Stats(context.Background(), testUser, models.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, models.PeriodWeek, stats.Overview.Period)
	assert.True(t, decimal.NewFromInt(1000).Equal(stats.Overview.TotalIncome))
	assert.True(t, decimal.NewFromInt(250).Equal(stats.Overview.TotalExpenses))
	assert.True(t, decimal.NewFromInt(300).Equal(stats.Overview.TotalInvestment))
	assert.True(t, decimal.NewFromInt(450).Equal(stats.Overview.Balance))

	require.Len(t, stats.ExpensesByCategory, 2)
	assert.Equal(t, "Food", stats.ExpensesByCategory[0].Category)
	assert.True(t, decimal.NewFromInt(200).Equal(stats.ExpensesByCategory[0].Amount))
	assert.True(t, decimal.NewFromInt(80).Equal(stats.ExpensesByCategory[0].Percentage))
	assert.Equal(t, models.LabelUncategorized, stats.ExpensesByCategory[1].Category)
	assert.True(t, decimal.NewFromInt(20).Equal(stats.ExpensesByCategory[1].Percentage))

	require.Len(t, stats.IncomeByCategory, 1)
	assert.Equal(t, "Salary", stats.IncomeByCategory[0].Category)
	assert.True(t, decimal.NewFromInt(100).Equal(stats.IncomeByCategory[0].Percentage))

	require.Len(t, stats.InvestmentsByType, 1)
	assert.Equal(t, "crypto", stats.InvestmentsByType[0].Category)
	assert.True(t, decimal.NewFromInt(300).Equal(stats.InvestmentsByType[0].Amount))
}

func TestTransactionService_Stats_ChartSeries(t *testing.T) {
	env := newTestEnv(t)
	account := env.seedAccount(t, testUser, decimal.NewFromInt(100000))

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	seed := []*TransactionInput{
		{Type: models.TypeIncome, Amount: decimal.NewFromInt(400), Date: dateString(yesterday), Account: account.ID},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(120), Date: dateString(twoDaysAgo), Account: account.ID},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(80), Date: dateString(twoDaysAgo), Account: account.ID},
	}
	for _, in := range seed {
		_, err := env.service.Create(context.Background(), testUser, in)
		require.NoError(t, err)
	}

	stats, err := env.service.Stats(context.Background(), testUser, models.PeriodWeek)
	require.NoError(t, err)

	// One zeroed bucket per calendar day in the window, start day included.
	require.Len(t, stats.ChartData, 8)
	for i := 1; i < len(stats.ChartData); i++ {
		assert.Less(t, stats.ChartData[i-1].Date, stats.ChartData[i].Date)
	}

	points := map[string]models.DailyPoint{}
	for _, point := range stats.ChartData {
		points[point.Date] = point
	}

	assert.True(t, decimal.NewFromInt(400).Equal(points[dateString(yesterday)].Income))
	assert.True(t, decimal.NewFromInt(200).Equal(points[dateString(twoDaysAgo)].Expense))

	threeDaysAgo := dateString(now.AddDate(0, 0, -3))
	assert.True(t, decimal.Zero.Equal(points[threeDaysAgo].Income))
	assert.True(t, decimal.Zero.Equal(points[threeDaysAgo].Expense))
	assert.True(t, decimal.Zero.Equal(points[threeDaysAgo].Investment))
}

func TestTransactionService_Stats_TopFiveCategories(t *testing.T) {
	env := newTestEnv(t)
	account := env.seedAccount(t, testUser, decimal.NewFromInt(100000))

	now := time.Now()
	names := []string{"Rent", "Food", "Transport", "Utilities", "Leisure", "Clothing", "Books"}
	for i, name := range names {
		category := env.seedCategory(t, testUser, name)
		_, err := env.service.Create(context.Background(), testUser, &TransactionInput{
			Type:     models.TypeExpense,
			Amount:   decimal.NewFromInt(int64((len(names) - i) * 100)),
			Date:     dateString(now.AddDate(0, 0, -1)),
			Account:  account.ID,
			Category: category.ID,
		})
		require.NoError(t, err)
	}

	stats, err := env.service.Stats(context.Background(), testUser, models.PeriodWeek)
	require.NoError(t, err)

	require.Len(t, stats.ExpensesByCategory, 5)
	assert.Equal(t, "Rent", stats.ExpensesByCategory[0].Category)
	for i := 1; i < len(stats.ExpensesByCategory); i++ {
		assert.True(t, stats.ExpensesByCategory[i-1].Amount.GreaterThan(stats.ExpensesByCategory[i].Amount))
	}
}

func TestTransactionService_Stats_DanglingInvestmentLabel(t *testing.T) {
	env := newTestEnv(t)
	account := env.seedAccount(t, testUser, decimal.NewFromInt(100000))
	investment := env.seedInvestment(t, testUser, "stocks",
		decimal.NewFromInt(1000), decimal.NewFromInt(1000))

	created, err := env.service.Create(context.Background(), testUser, &TransactionInput{
		Type:       models.TypeInvestment,
		Amount:     decimal.NewFromInt(100),
		Date:       dateString(time.Now().AddDate(0, 0, -1)),
		Account:    account.ID,
		Investment: investment.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Removing the investment leaves the transaction with a dangling
	// reference that falls back to the catch-all label.
	_, err = env.investments.Delete(context.Background(), investment.ID, testUser)
	require.NoError(t, err)

	stats, err := env.service.Stats(context.Background(), testUser, models.PeriodWeek)
	require.NoError(t, err)

	require.Len(t, stats.InvestmentsByType, 1)
	assert.Equal(t, models.LabelOther, stats.InvestmentsByType[0].Category)
}

func TestTransactionService_Stats_DefaultsToMonth(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.service.Stats(context.Background(), testUser, models.Period("quarter"))
	require.NoError(t, err)

	assert.Equal(t, models.PeriodMonth, stats.Overview.Period)
	assert.True(t, decimal.Zero.Equal(stats.Overview.TotalIncome))
	assert.True(t, decimal.Zero.Equal(stats.Overview.Balance))
	assert.Empty(t, stats.ExpensesByCategory)
	assert.Empty(t, stats.IncomeByCategory)
	assert.Empty(t, stats.InvestmentsByType)
	assert.NotEmpty(t, stats.ChartData)
}
