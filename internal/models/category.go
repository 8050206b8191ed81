package models

import (
	"errors"
	"time"
)

// Category labels transactions for statistics breakdowns.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Type      string    `json:"type" gorm:"column:type;type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Validate validates the category data
func (c *Category) Validate() error {
	if c.UserID == "" {
		return errors.New("user is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
