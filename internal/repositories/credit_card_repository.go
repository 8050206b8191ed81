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

type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository
func NewCreditCardRepository(database *db.DB) CreditCardRepository {
	return &creditCardRepository{db: database.DB}
}

func (r *creditCardRepository) WithUnit(unit *gorm.DB) CreditCardRepository {
	return &creditCardRepository{db: unit}
}

func (r *creditCardRepository) Create(ctx context.Context, card *models.CreditCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create credit card: %w", err)
	}
	return nil
}

func (r *creditCardRepository) GetByID(ctx context.Context, id, userID string) (*models.CreditCard, error) {
	if id == "" {
		return nil, nil
	}

	var card models.CreditCard
	err := r.db.WithContext(ctx).First(&card, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}

	return &card, nil
}

func (r *creditCardRepository) List(ctx context.Context, userID string) ([]*models.CreditCard, error) {
	var cards []*models.CreditCard
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, card *models.CreditCard) error {
	result := r.db.WithContext(ctx).Model(&models.CreditCard{}).
		Where("id = ? AND user_id = ?", card.ID, card.UserID).
		Updates(map[string]interface{}{
			"name":       card.Name,
			"card_limit": card.Limit,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update credit card: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no credit card found with id %s", card.ID)
	}

	return nil
}

func (r *creditCardRepository) AddToUsedAmount(ctx context.Context, id, userID string, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.CreditCard{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"used_amount": gorm.Expr("used_amount + ?", amount),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update credit card balance: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no credit card found with id %s", id)
	}

	return nil
}

func (r *creditCardRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CreditCard{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete credit card: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
