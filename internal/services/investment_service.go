package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

type investmentService struct {
	investments repositories.InvestmentRepository
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(investments repositories.InvestmentRepository) InvestmentService {
	return &investmentService{investments: investments}
}

// Create opens a position. The current value defaults to the initial value
// and the performance pair is derived, never taken from the caller.
func (s *investmentService) Create(ctx context.Context, investment *models.Investment) (*models.Investment, error) {
	if err := investment.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "investment", Message: err.Error()}
	}
	investment.ID = uuid.NewString()
	if investment.CurrentValue.IsZero() {
		investment.CurrentValue = investment.InitialValue
	}
	investment.RecalculatePerformance()
	if err := s.investments.Create(ctx, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

func (s *investmentService) Get(ctx context.Context, id, userID string) (*models.Investment, error) {
	investment, err := s.investments.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, apperrors.NotFound("investment not found")
	}
	return investment, nil
}

func (s *investmentService) List(ctx context.Context, userID string) ([]*models.Investment, error) {
	return s.investments.List(ctx, userID)
}

func (s *investmentService) Update(ctx context.Context, investment *models.Investment) (*models.Investment, error) {
	if err := investment.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "investment", Message: err.Error()}
	}
	investment.RecalculatePerformance()
	if err := s.investments.Update(ctx, investment); err != nil {
		return nil, apperrors.NotFound("investment not found")
	}
	return s.Get(ctx, investment.ID, investment.UserID)
}

func (s *investmentService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.investments.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("investment not found")
	}
	return nil
}
