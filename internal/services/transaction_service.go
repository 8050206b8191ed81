package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/plutoledger/pluto/internal/db"
	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

const defaultPageSize = 10

// transactionService implements the TransactionService interface
type transactionService struct {
	db           *db.DB
	transactions repositories.TransactionRepository
	accounts     repositories.AccountRepository
	investments  repositories.InvestmentRepository
	creditCards  repositories.CreditCardRepository
	categories   repositories.CategoryRepository
	logger       *zap.Logger
}

// NewTransactionService creates a new transaction service. All stores are
// injected up front; the service resolves nothing at call time.
func NewTransactionService(
	database *db.DB,
	transactions repositories.TransactionRepository,
	accounts repositories.AccountRepository,
	investments repositories.InvestmentRepository,
	creditCards repositories.CreditCardRepository,
	categories repositories.CategoryRepository,
	logger *zap.Logger,
) TransactionService {
	return &transactionService{
		db:           database,
		transactions: transactions,
		accounts:     accounts,
		investments:  investments,
		creditCards:  creditCards,
		categories:   categories,
		logger:       logger,
	}
}

// Create persists a new transaction and applies its balance effect inside one
// atomic unit. Card expenses charge the credit card; every other entry moves
// the account balance, and investment-typed entries additionally raise the
// referenced investment's valuation.
func (s *transactionService) Create(ctx context.Context, userID string, in *TransactionInput) (*models.Transaction, error) {
	tx, err := in.normalize(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.RunUnit(ctx, func(unit *gorm.DB) error {
		if err := s.transactions.WithUnit(unit).Create(ctx, tx); err != nil {
			return err
		}
		return s.applyEffect(ctx, unit, tx)
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *transactionService) applyEffect(ctx context.Context, unit *gorm.DB, tx *models.Transaction) error {
	if tx.IsCardExpense() {
		return s.creditCards.WithUnit(unit).AddToUsedAmount(ctx, *tx.CreditCardID, tx.UserID, tx.Amount)
	}

	accounts := s.accounts.WithUnit(unit)
	account, err := accounts.GetByID(ctx, tx.AccountID, tx.UserID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.NotFound("account not found")
	}
	account.Balance = account.Balance.Add(tx.BalanceEffect())
	if err := accounts.UpdateBalance(ctx, account.ID, tx.UserID, account.Balance); err != nil {
		return err
	}

	if tx.Type == models.TypeInvestment && tx.InvestmentID != nil {
		return s.addToInvestment(ctx, unit, tx.UserID, *tx.InvestmentID, tx.Amount)
	}

	return nil
}

// addToInvestment raises an investment's valuation by amount and recomputes
// its performance. A missing investment is ignored, matching the found-only
// guard of the valuation rules. Pass a negative amount to reverse.
func (s *transactionService) addToInvestment(ctx context.Context, unit *gorm.DB, userID, investmentID string, amount decimal.Decimal) error {
	investments := s.investments.WithUnit(unit)
	investment, err := investments.GetByID(ctx, investmentID, userID)
	if err != nil {
		return err
	}
	if investment == nil {
		return nil
	}

	investment.CurrentValue = investment.CurrentValue.Add(amount)
	investment.RecalculatePerformance()
	return investments.UpdateValuation(ctx, investment.ID, userID, investment.CurrentValue, investment.Performance)
}

// Get retrieves a transaction owned by userID.
func (s *transactionService) Get(ctx context.Context, id, userID string) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperrors.NotFound("transaction not found")
	}
	return tx, nil
}

// List returns one page of the user's transactions with the total count.
func (s *transactionService) List(ctx context.Context, userID string, filter *models.TransactionFilter) (*TransactionList, error) {
	if filter == nil {
		filter = &models.TransactionFilter{}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}

	transactions, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.transactions.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &TransactionList{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		Pages:        (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// Update applies a partial payload to a transaction. When the change affects
// balances, the original effect is reversed before the new one is applied;
// reversal and reapplication always complete inside the same atomic unit.
// Updates that touch no balance-affecting field skip the reconciliation
// entirely.
func (s *transactionService) Update(ctx context.Context, id, userID string, in *TransactionUpdateInput) (*models.Transaction, error) {
	patch, err := in.normalize()
	if err != nil {
		return nil, err
	}

	var updated *models.Transaction
	err = s.db.RunUnit(ctx, func(unit *gorm.DB) error {
		transactions := s.transactions.WithUnit(unit)

		original, err := transactions.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}
		if original == nil {
			return apperrors.NotFound("transaction not found")
		}

		amountChanged := patch.Amount != nil && !patch.Amount.Equal(original.Amount)

		needsAccountUpdate := amountChanged ||
			(patch.Type != nil && *patch.Type != original.Type) ||
			(patch.AccountID != nil && *patch.AccountID != original.AccountID)

		needsInvestmentUpdate := original.Type == models.TypeInvestment &&
			(amountChanged ||
				(patch.Investment != nil && original.InvestmentID != nil && *patch.Investment != *original.InvestmentID))

		if needsAccountUpdate {
			if err := s.reconcileAccounts(ctx, unit, original, patch); err != nil {
				return err
			}
		}

		if needsInvestmentUpdate {
			if err := s.reconcileInvestments(ctx, unit, original, patch); err != nil {
				return err
			}
		}

		merged := patch.applyTo(original)
		if err := transactions.Update(ctx, merged); err != nil {
			return apperrors.Internal("failed to update transaction")
		}

		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// reconcileAccounts reverses the original transaction's effect on its account
// and applies the new type/amount to the target account. The reversal is
// persisted before the target is even resolved, so a cross-account move never
// double-counts mid-unit.
func (s *transactionService) reconcileAccounts(ctx context.Context, unit *gorm.DB, original *models.Transaction, patch *transactionPatch) error {
	accounts := s.accounts.WithUnit(unit)

	originalAccount, err := accounts.GetByID(ctx, original.AccountID, original.UserID)
	if err != nil {
		return err
	}
	if originalAccount == nil {
		return apperrors.NotFound("original account not found")
	}

	originalAccount.Balance = originalAccount.Balance.Sub(original.BalanceEffect())
	if err := accounts.UpdateBalance(ctx, originalAccount.ID, original.UserID, originalAccount.Balance); err != nil {
		return err
	}

	target := originalAccount
	if patch.AccountID != nil && *patch.AccountID != original.AccountID {
		target, err = accounts.GetByID(ctx, *patch.AccountID, original.UserID)
		if err != nil {
			return err
		}
		if target == nil {
			return apperrors.NotFound("target account not found")
		}
	}

	newEntry := models.Transaction{Type: original.Type, Amount: original.Amount}
	if patch.Type != nil {
		newEntry.Type = *patch.Type
	}
	if patch.Amount != nil {
		newEntry.Amount = *patch.Amount
	}

	target.Balance = target.Balance.Add(newEntry.BalanceEffect())
	return accounts.UpdateBalance(ctx, target.ID, original.UserID, target.Balance)
}

// reconcileInvestments removes the original amount from the original
// investment's valuation and adds the new amount to the target investment.
// Missing investments are skipped, not errors.
func (s *transactionService) reconcileInvestments(ctx context.Context, unit *gorm.DB, original *models.Transaction, patch *transactionPatch) error {
	if original.InvestmentID != nil {
		if err := s.addToInvestment(ctx, unit, original.UserID, *original.InvestmentID, original.Amount.Neg()); err != nil {
			return err
		}
	}

	targetID := ""
	if patch.Investment != nil {
		targetID = *patch.Investment
	} else if original.InvestmentID != nil {
		targetID = *original.InvestmentID
	}
	if targetID == "" {
		return nil
	}

	newAmount := original.Amount
	if patch.Amount != nil {
		newAmount = *patch.Amount
	}
	return s.addToInvestment(ctx, unit, original.UserID, targetID, newAmount)
}

// Delete reverses the transaction's balance effect and removes the record,
// all inside one atomic unit. It reports whether the record was removed.
func (s *transactionService) Delete(ctx context.Context, id, userID string) (bool, error) {
	deleted := false
	err := s.db.RunUnit(ctx, func(unit *gorm.DB) error {
		transactions := s.transactions.WithUnit(unit)

		tx, err := transactions.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}
		if tx == nil {
			return apperrors.NotFound("transaction not found")
		}

		if tx.Type == models.TypeInvestment && tx.InvestmentID != nil {
			if err := s.addToInvestment(ctx, unit, userID, *tx.InvestmentID, tx.Amount.Neg()); err != nil {
				return err
			}
		}

		if !tx.IsCardExpense() {
			accounts := s.accounts.WithUnit(unit)
			account, err := accounts.GetByID(ctx, tx.AccountID, userID)
			if err != nil {
				return err
			}
			if account == nil {
				return apperrors.NotFound("account not found")
			}
			account.Balance = account.Balance.Sub(tx.BalanceEffect())
			if err := accounts.UpdateBalance(ctx, account.ID, userID, account.Balance); err != nil {
				return err
			}
		}

		deleted, err = transactions.Delete(ctx, id, userID)
		return err
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// RemoveAttachment drops one attachment from a transaction's list.
func (s *transactionService) RemoveAttachment(ctx context.Context, id, userID, attachmentID string) (*models.Transaction, error) {
	var updated *models.Transaction
	err := s.db.RunUnit(ctx, func(unit *gorm.DB) error {
		transactions := s.transactions.WithUnit(unit)

		tx, err := transactions.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}
		if tx == nil {
			return apperrors.NotFound("transaction not found")
		}
		if len(tx.Attachments) == 0 {
			return apperrors.NotFound("transaction has no attachments")
		}

		kept := make([]models.Attachment, 0, len(tx.Attachments))
		for _, attachment := range tx.Attachments {
			if attachment.ID != attachmentID {
				kept = append(kept, attachment)
			}
		}
		if len(kept) == len(tx.Attachments) {
			return apperrors.NotFound("attachment not found")
		}

		tx.Attachments = kept
		if err := transactions.Update(ctx, tx); err != nil {
			return apperrors.Internal("failed to remove attachment")
		}

		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListByInvestment returns the user's transactions linked to one investment.
func (s *transactionService) ListByInvestment(ctx context.Context, userID, investmentID string) ([]*models.Transaction, error) {
	transactions, err := s.transactions.ListByInvestment(ctx, userID, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for investment %s: %w", investmentID, err)
	}
	return transactions, nil
}
