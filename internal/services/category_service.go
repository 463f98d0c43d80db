package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	repo     repositories.CategoryRepositoryInterface
	matcher  *CategoryMatcher
	defaults []models.DefaultCategory
}

// NewCategoryService creates a new CategoryServiceInterface instance.
// defaults is the taxonomy provisioned for new users.
func NewCategoryService(repo repositories.CategoryRepositoryInterface, matcher *CategoryMatcher, defaults []models.DefaultCategory) CategoryServiceInterface {
	if matcher == nil {
		matcher = NewCategoryMatcher(defaultMerchantPool())
	}
	if len(defaults) == 0 {
		defaults = models.DefaultCategories()
	}
	return &categoryService{
		repo:     repo,
		matcher:  matcher,
		defaults: defaults,
	}
}

func (s *categoryService) List(ctx context.Context, userID uuid.UUID, categoryType string) ([]models.Category, error) {
	if categoryType != "" && categoryType != models.CategoryTypeExpense && categoryType != models.CategoryTypeIncome {
		return nil, invalidInput("type", models.ErrInvalidCategoryType)
	}
	return s.repo.ListByUser(ctx, userID, categoryType)
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
		Color:  req.Color,
		Type:   req.Type,
	}
	if category.Type == "" {
		category.Type = models.CategoryTypeExpense
	}

	if err := category.Validate(); err != nil {
		return nil, invalidInput("category", err)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := category.Validate(); err != nil {
		return nil, invalidInput("category", err)
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// ProvisionDefaults creates the default taxonomy for a user who has no
// categories yet. It is a no-op otherwise.
func (s *categoryService) ProvisionDefaults(ctx context.Context, userID uuid.UUID) error {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(s.defaults))
	for _, def := range s.defaults {
		categories = append(categories, models.Category{
			UserID: userID,
			Name:   def.Name,
			Icon:   def.Icon,
			Color:  def.Color,
			Type:   def.Type,
		})
	}

	if err := s.repo.CreateBatch(ctx, categories); err != nil {
		return fmt.Errorf("failed to provision default categories: %w", err)
	}

	return nil
}

// Match looks only at expense categories.
func (s *categoryService) Match(ctx context.Context, userID uuid.UUID, hints ...string) (*models.Category, float64, error) {
	categories, err := s.repo.ListByUser(ctx, userID, models.CategoryTypeExpense)
	if err != nil {
		return nil, 0, err
	}

	category, confidence := s.matcher.Match(categories, hints...)
	return category, confidence, nil
}

// resolveCategory loads an optional category reference and checks its type.
func resolveCategory(ctx context.Context, repo repositories.CategoryRepositoryInterface, userID uuid.UUID, id *uuid.UUID, wantType string) error {
	if id == nil {
		return nil
	}

	category, err := repo.GetByID(ctx, userID, *id)
	if err != nil {
		return err
	}

	if wantType != "" && category.Type != wantType {
		return fmt.Errorf("%w: %s is an %s category", ErrCategoryTypeMismatch, category.Name, category.Type)
	}

	return nil
}
