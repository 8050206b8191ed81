package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard tracks the amount charged to a card. Card expenses increase
// UsedAmount via the transaction service; payment handling lives outside the
// ledger core.
type CreditCard struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID     string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name       string          `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Limit      decimal.Decimal `json:"limit" gorm:"column:card_limit;type:decimal(30,18);not null"`
	UsedAmount decimal.Decimal `json:"used_amount" gorm:"column:used_amount;type:decimal(30,18);not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the CreditCard model
func (CreditCard) TableName() string {
	return "credit_cards"
}

// Validate validates the credit card data
func (c *CreditCard) Validate() error {
	if c.UserID == "" {
		return errors.New("user is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Limit.IsNegative() {
		return errors.New("limit must be non-negative")
	}
	return nil
}
