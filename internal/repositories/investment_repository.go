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

type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(database *db.DB) InvestmentRepository {
	return &investmentRepository{db: database.DB}
}

func (r *investmentRepository) WithUnit(unit *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: unit}
}

func (r *investmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	if err := r.db.WithContext(ctx).Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *investmentRepository) GetByID(ctx context.Context, id, userID string) (*models.Investment, error) {
	if id == "" {
		return nil, nil
	}

	var investment models.Investment
	err := r.db.WithContext(ctx).First(&investment, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}

	return &investment, nil
}

func (r *investmentRepository) List(ctx context.Context, userID string) ([]*models.Investment, error) {
	var investments []*models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&investments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return investments, nil
}

func (r *investmentRepository) Update(ctx context.Context, investment *models.Investment) error {
	result := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ? AND user_id = ?", investment.ID, investment.UserID).
		Updates(map[string]interface{}{
			"name":              investment.Name,
			"type":              investment.Type,
			"initial_value":     investment.InitialValue,
			"current_value":     investment.CurrentValue,
			"absolute_return":   investment.Performance.AbsoluteReturn,
			"percentage_return": investment.Performance.PercentageReturn,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update investment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no investment found with id %s", investment.ID)
	}

	return nil
}

func (r *investmentRepository) UpdateValuation(ctx context.Context, id, userID string, currentValue decimal.Decimal, performance models.Performance) error {
	result := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"current_value":     currentValue,
			"absolute_return":   performance.AbsoluteReturn,
			"percentage_return": performance.PercentageReturn,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update investment valuation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no investment found with id %s", id)
	}

	return nil
}

func (r *investmentRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Investment{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete investment: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
