package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Performance is the derived return pair of an investment. It is never set
// directly; RecalculatePerformance recomputes it whenever the valuation
// changes.
type Performance struct {
	AbsoluteReturn   decimal.Decimal `json:"absolute_return" gorm:"column:absolute_return;type:decimal(30,18);not null"`
	PercentageReturn decimal.Decimal `json:"percentage_return" gorm:"column:percentage_return;type:decimal(30,18);not null"`
}

// Investment represents an investment position owned by one user.
type Investment struct {
	ID           string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID       string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name         string          `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Type         string          `json:"type" gorm:"column:type;type:varchar(50)"`
	InitialValue decimal.Decimal `json:"initial_value" gorm:"column:initial_value;type:decimal(30,18);not null"`
	CurrentValue decimal.Decimal `json:"current_value" gorm:"column:current_value;type:decimal(30,18);not null"`
	Performance  Performance     `json:"performance" gorm:"embedded"`
	CreatedAt    time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Investment model
func (Investment) TableName() string {
	return "investments"
}

// Validate validates the investment data
func (i *Investment) Validate() error {
	if i.UserID == "" {
		return errors.New("user is required")
	}
	if i.Name == "" {
		return errors.New("name is required")
	}
	if i.InitialValue.IsNegative() {
		return errors.New("initial value must be non-negative")
	}
	return nil
}

// RecalculatePerformance recomputes the derived return pair from the current
// and initial values. The percentage return is zero when the initial value is
// not positive.
func (i *Investment) RecalculatePerformance() {
	i.Performance.AbsoluteReturn = i.CurrentValue.Sub(i.InitialValue)
	if i.InitialValue.IsPositive() {
		i.Performance.PercentageReturn = i.Performance.AbsoluteReturn.
			Div(i.InitialValue).
			Mul(decimal.NewFromInt(100))
	} else {
		i.Performance.PercentageReturn = decimal.Zero
	}
}
