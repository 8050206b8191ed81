package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/repositories"
)

type categoryService struct {
	categories repositories.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories repositories.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "category", Message: err.Error()}
	}
	category.ID = uuid.NewString()
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id, userID string) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NotFound("category not found")
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, userID string) ([]*models.Category, error) {
	return s.categories.List(ctx, userID)
}

func (s *categoryService) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "category", Message: err.Error()}
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.NotFound("category not found")
	}
	return s.Get(ctx, category.ID, category.UserID)
}

func (s *categoryService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.categories.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("category not found")
	}
	return nil
}
