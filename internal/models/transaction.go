package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TypeIncome     = "income"
	TypeExpense    = "expense"
	TypeInvestment = "investment"
)

// Attachment is a file attached to a transaction. The list is stored
// serialized on the transaction row.
type Attachment struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Transaction represents a single ledger entry scoped to one user.
// Depending on its type and references it affects exactly one
// balance-bearing record: the account, plus the investment valuation for
// investment-typed entries, or the credit card for card expenses.
type Transaction struct {
	ID           string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID       string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Type         string          `json:"type" gorm:"column:type;type:varchar(50);not null;index"`
	Amount       decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(30,18);not null"`
	Date         time.Time       `json:"date" gorm:"column:date;not null;index"`
	Description  string          `json:"description" gorm:"column:description;type:text"`
	AccountID    string          `json:"account_id" gorm:"column:account_id;type:varchar(255);not null;index"`
	CategoryID   *string         `json:"category_id" gorm:"column:category_id;type:varchar(255);index"`
	CreditCardID *string         `json:"credit_card_id" gorm:"column:credit_card_id;type:varchar(255)"`
	InvestmentID *string         `json:"investment_id" gorm:"column:investment_id;type:varchar(255);index"`
	Attachments  []Attachment    `json:"attachments" gorm:"column:attachments;serializer:json"`
	CreatedAt    time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter represents filters for querying transactions
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Types      []string
	AccountID  *string
	CategoryID *string
	Page       int
	Limit      int
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return errors.New("user is required")
	}
	if t.Type != TypeIncome && t.Type != TypeExpense && t.Type != TypeInvestment {
		return errors.New("type must be income, expense or investment")
	}
	if t.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	if t.AccountID == "" {
		return errors.New("account is required")
	}
	return nil
}

// BalanceEffect returns the signed delta this transaction applies to its
// account balance: positive for income, negative for expense and investment.
// Reversing an effect is applying its negation.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsCardExpense reports whether the entry charges a credit card instead of
// debiting an account.
func (t *Transaction) IsCardExpense() bool {
	return t.CreditCardID != nil && *t.CreditCardID != "" && t.Type == TypeExpense
}
