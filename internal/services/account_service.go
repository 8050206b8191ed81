package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

type accountService struct {
	accounts repositories.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accounts repositories.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

// Create opens an account with its seed balance. After creation the balance
// moves only through the transaction service.
func (s *accountService) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "account", Message: err.Error()}
	}
	account.ID = uuid.NewString()
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) Get(ctx context.Context, id, userID string) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.NotFound("account not found")
	}
	return account, nil
}

func (s *accountService) List(ctx context.Context, userID string) ([]*models.Account, error) {
	return s.accounts.List(ctx, userID)
}

// Update edits account metadata. The balance field is ignored here on
// purpose.
func (s *accountService) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "account", Message: err.Error()}
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, apperrors.NotFound("account not found")
	}
	return s.Get(ctx, account.ID, account.UserID)
}

func (s *accountService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.accounts.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("account not found")
	}
	return nil
}
