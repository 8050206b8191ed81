package services

import (
	"context"

	"github.com/plutoledger/pluto/internal/models"
)

// TransactionService is the ledger mutation engine: it drives transaction
// CRUD, keeps account balances, investment valuations and credit card usage
// consistent with the transaction records, and derives period statistics.
type TransactionService interface {
	Create(ctx context.Context, userID string, in *TransactionInput) (*models.Transaction, error)
	Get(ctx context.Context, id, userID string) (*models.Transaction, error)
	List(ctx context.Context, userID string, filter *models.TransactionFilter) (*TransactionList, error)
	Update(ctx context.Context, id, userID string, in *TransactionUpdateInput) (*models.Transaction, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	RemoveAttachment(ctx context.Context, id, userID, attachmentID string) (*models.Transaction, error)
	Stats(ctx context.Context, userID string, period models.Period) (*models.TransactionStats, error)
	ListByInvestment(ctx context.Context, userID, investmentID string) ([]*models.Transaction, error)
}

// TransactionList is a page of transactions.
type TransactionList struct {
	Transactions []*models.Transaction `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Pages        int                   `json:"pages"`
}

// AccountService defines the interface for account operations
type AccountService interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Get(ctx context.Context, id, userID string) (*models.Account, error)
	List(ctx context.Context, userID string) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) (*models.Account, error)
	Delete(ctx context.Context, id, userID string) error
}

// InvestmentService defines the interface for investment operations
type InvestmentService interface {
	Create(ctx context.Context, investment *models.Investment) (*models.Investment, error)
	Get(ctx context.Context, id, userID string) (*models.Investment, error)
	List(ctx context.Context, userID string) ([]*models.Investment, error)
	Update(ctx context.Context, investment *models.Investment) (*models.Investment, error)
	Delete(ctx context.Context, id, userID string) error
}

// CreditCardService defines the interface for credit card operations
type CreditCardService interface {
	Create(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error)
	Get(ctx context.Context, id, userID string) (*models.CreditCard, error)
	List(ctx context.Context, userID string) ([]*models.CreditCard, error)
	Update(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error)
	Delete(ctx context.Context, id, userID string) error
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Get(ctx context.Context, id, userID string) (*models.Category, error)
	List(ctx context.Context, userID string) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id, userID string) error
}
