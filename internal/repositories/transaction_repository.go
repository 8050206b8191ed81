package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plutoledger/pluto/internal/db"
	"github.com/plutoledger/pluto/internal/models"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(database *db.DB) TransactionRepository {
	return &transactionRepository{db: database.DB}
}

func (r *transactionRepository) WithUnit(unit *gorm.DB) TransactionRepository {
	return &transactionRepository{db: unit}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id, userID string) (*models.Transaction, error) {
	if id == "" {
		return nil, nil
	}

	var tx models.Transaction
	err := r.db.WithContext(ctx).First(&tx, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context, userID string, filter *models.TransactionFilter) ([]*models.Transaction, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Where("user_id = ?", userID), filter)

	query = query.Order("date DESC, created_at DESC")

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.Limit)
		}
	}

	var transactions []*models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context, userID string, filter *models.TransactionFilter) (int, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return int(count), nil
}

func (r *transactionRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by date range: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) ListByInvestment(ctx context.Context, userID, investmentID string) ([]*models.Transaction, error) {
	if _, err := uuid.Parse(investmentID); err != nil {
		return []*models.Transaction{}, nil
	}

	var transactions []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND investment_id = ?", userID, investmentID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by investment: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	if tx == nil || tx.ID == "" {
		return errors.New("transaction id is required")
	}

	// Select("*") so cleared optional references are written out too.
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", tx.ID, tx.UserID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(tx)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no transaction found with id %s", tx.ID)
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *transactionRepository) applyFilter(query *gorm.DB, filter *models.TransactionFilter) *gorm.DB {
	if filter == nil {
		return query
	}

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}
	if filter.AccountID != nil && *filter.AccountID != "" {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil && *filter.CategoryID != "" {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	return query
}
