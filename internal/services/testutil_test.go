package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/plutoledger/pluto/internal/db"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

// newTestDB opens a fresh in-memory database per test. The unique shared-cache
// name keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database := &db.DB{DB: gormDB}
	require.NoError(t, database.Migrate())

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

type testEnv struct {
	db           *db.DB
	service      TransactionService
	transactions repositories.TransactionRepository
	accounts     repositories.AccountRepository
	investments  repositories.InvestmentRepository
	creditCards  repositories.CreditCardRepository
	categories   repositories.CategoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := newTestDB(t)
	transactions := repositories.NewTransactionRepository(database)
	accounts := repositories.NewAccountRepository(database)
	investments := repositories.NewInvestmentRepository(database)
	creditCards := repositories.NewCreditCardRepository(database)
	categories := repositories.NewCategoryRepository(database)

	return &testEnv{
		db: database,
		service: NewTransactionService(
			database, transactions, accounts, investments, creditCards, categories, zap.NewNop()),
		transactions: transactions,
		accounts:     accounts,
		investments:  investments,
		creditCards:  creditCards,
		categories:   categories,
	}
}

func (e *testEnv) seedAccount(t *testing.T, userID string, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    "Checking",
		Type:    models.AccountTypeChecking,
		Balance: balance,
	}
	require.NoError(t, e.accounts.Create(context.Background(), account))
	return account
}

func (e *testEnv) seedInvestment(t *testing.T, userID, investmentType string, initial, current decimal.Decimal) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         "Index fund",
		Type:         investmentType,
		InitialValue: initial,
		CurrentValue: current,
	}
	investment.RecalculatePerformance()
	require.NoError(t, e.investments.Create(context.Background(), investment))
	return investment
}

func (e *testEnv) seedCreditCard(t *testing.T, userID string, used decimal.Decimal) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       "Visa",
		Limit:      decimal.NewFromInt(5000),
		UsedAmount: used,
	}
	require.NoError(t, e.creditCards.Create(context.Background(), card))
	return card
}

func (e *testEnv) seedCategory(t *testing.T, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
	require.NoError(t, e.categories.Create(context.Background(), category))
	return category
}

func (e *testEnv) accountBalance(t *testing.T, id, userID string) decimal.Decimal {
	t.Helper()

	account, err := e.accounts.GetByID(context.Background(), id, userID)
	require.NoError(t, err)
	require.NotNil(t, account)
	return account.Balance
}

func (e *testEnv) investmentState(t *testing.T, id, userID string) *models.Investment {
	t.Helper()

	investment, err := e.investments.GetByID(context.Background(), id, userID)
	require.NoError(t, err)
	require.NotNil(t, investment)
	return investment
}

func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}
