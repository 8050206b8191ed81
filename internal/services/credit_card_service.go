package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

type creditCardService struct {
	creditCards repositories.CreditCardRepository
}

// NewCreditCardService creates a new credit card service
func NewCreditCardService(creditCards repositories.CreditCardRepository) CreditCardService {
	return &creditCardService{creditCards: creditCards}
}

func (s *creditCardService) Create(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error) {
	if err := card.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "credit_card", Message: err.Error()}
	}
	card.ID = uuid.NewString()
	if err := s.creditCards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *creditCardService) Get(ctx context.Context, id, userID string) (*models.CreditCard, error) {
	card, err := s.creditCards.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperrors.NotFound("credit card not found")
	}
	return card, nil
}

func (s *creditCardService) List(ctx context.Context, userID string) ([]*models.CreditCard, error) {
	return s.creditCards.List(ctx, userID)
}

func (s *creditCardService) Update(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error) {
	if err := card.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "credit_card", Message: err.Error()}
	}
	if err := s.creditCards.Update(ctx, card); err != nil {
		return nil, apperrors.NotFound("credit card not found")
	}
	return s.Get(ctx, card.ID, card.UserID)
}

func (s *creditCardService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.creditCards.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("credit card not found")
	}
	return nil
}
