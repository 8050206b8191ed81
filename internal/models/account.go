package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Common account types
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeWallet   = "wallet"
	AccountTypeOther    = "other"
)

// Account holds a user's balance. The balance is mutated only by the
// transaction service's reconciliation logic, never directly by callers.
type Account struct {
	ID        string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name      string          `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Type      string          `json:"type" gorm:"column:type;type:varchar(50)"`
	Balance   decimal.Decimal `json:"balance" gorm:"column:balance;type:decimal(30,18);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// Validate validates the account data
func (a *Account) Validate() error {
	if a.UserID == "" {
		return errors.New("user is required")
	}
	if a.Name == "" {
		return errors.New("name is required")
	}
	if len(a.Name) > 100 {
		return errors.New("name must be 100 characters or less")
	}
	return nil
}
