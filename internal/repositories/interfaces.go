package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plutoledger/pluto/internal/models"
)

// Every repository is user-scoped: reads and writes are filtered by the
// owning user id. Lookups return (nil, nil) when no owned row exists; the
// service layer decides whether that is a not-found error.
//
// WithUnit returns a handle bound to an atomic unit (a *gorm.DB opened by
// db.RunUnit); operations on that handle commit or roll back with the unit.

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	WithUnit(unit *gorm.DB) TransactionRepository
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id, userID string) (*models.Transaction, error)
	List(ctx context.Context, userID string, filter *models.TransactionFilter) ([]*models.Transaction, error)
	Count(ctx context.Context, userID string, filter *models.TransactionFilter) (int, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*models.Transaction, error)
	ListByInvestment(ctx context.Context, userID, investmentID string) ([]*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	WithUnit(unit *gorm.DB) AccountRepository
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id, userID string) (*models.Account, error)
	List(ctx context.Context, userID string) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateBalance(ctx context.Context, id, userID string, balance decimal.Decimal) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// InvestmentRepository defines the interface for investment data operations
type InvestmentRepository interface {
	WithUnit(unit *gorm.DB) InvestmentRepository
	Create(ctx context.Context, investment *models.Investment) error
	GetByID(ctx context.Context, id, userID string) (*models.Investment, error)
	List(ctx context.Context, userID string) ([]*models.Investment, error)
	Update(ctx context.Context, investment *models.Investment) error
	UpdateValuation(ctx context.Context, id, userID string, currentValue decimal.Decimal, performance models.Performance) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// CreditCardRepository defines the interface for credit card data operations
type CreditCardRepository interface {
	WithUnit(unit *gorm.DB) CreditCardRepository
	Create(ctx context.Context, card *models.CreditCard) error
	GetByID(ctx context.Context, id, userID string) (*models.CreditCard, error)
	List(ctx context.Context, userID string) ([]*models.CreditCard, error)
	Update(ctx context.Context, card *models.CreditCard) error
	AddToUsedAmount(ctx context.Context, id, userID string, amount decimal.Decimal) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id, userID string) (*models.Category, error)
	List(ctx context.Context, userID string) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}
