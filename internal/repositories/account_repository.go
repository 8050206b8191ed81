package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plutoledger/pluto/internal/db"
	"github.com/plutoledger/pluto/internal/models"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(database *db.DB) AccountRepository {
	return &accountRepository{db: database.DB}
}

func (r *accountRepository) WithUnit(unit *gorm.DB) AccountRepository {
	return &accountRepository{db: unit}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id, userID string) (*models.Account, error) {
	if id == "" {
		return nil, nil
	}

	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) List(ctx context.Context, userID string) ([]*models.Account, error) {
	var accounts []*models.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		Updates(map[string]interface{}{
			"name":       account.Name,
			"type":       account.Type,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no account found with id %s", account.ID)
	}

	return nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id, userID string, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account balance: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no account found with id %s", id)
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Account{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete account: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
