package services

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/dto"
	"carpetstore/internal/i18n"
	"carpetstore/internal/models"
	"carpetstore/internal/repositories"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const categoryInUseMessage = "Cannot delete category that contains carpets. Please remove or reassign all carpets first."

// CategoryService handles the category commands and queries.
type CategoryService struct {
	repo    repositories.CategoryRepository
	catalog *i18n.Catalog
	now     func() time.Time
}

// NewCategoryService creates a new CategoryService. catalog localizes the
// conflict message and may be nil.
func NewCategoryService(repo repositories.CategoryRepository, catalog *i18n.Catalog) *CategoryService {
	return &CategoryService{
		repo:    repo,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateCategory stores a new, empty category.
func (s *CategoryService) CreateCategory(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDto, error) {
	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        cmd.Category.Name,
		Description: cmd.Category.Description,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	out := dto.NewCategoryDto(category)
	return &out, nil
}

// UpdateCategory overwrites the name and description of an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDto, error) {
	in := cmd.Category
	category, err := s.repo.GetByID(ctx, in.ID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperr.NotFound("category", in.ID)
		}
		return nil, err
	}

	now := s.now()
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = &now

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	out := dto.NewCategoryDto(category)
	return &out, nil
}

// DeleteCategory removes an empty category. It reports false when the category
// does not exist and fails with a conflict while it still owns carpets.
func (s *CategoryService) DeleteCategory(ctx context.Context, cmd DeleteCategoryCommand) (bool, error) {
	category, err := s.repo.GetByID(ctx, cmd.ID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if len(category.Carpets) > 0 {
		return false, apperr.Conflict(s.inUseMessage(ctx))
	}

	if err := s.repo.Delete(ctx, category); err != nil {
		return false, err
	}
	return true, nil
}

// GetCategoryByID returns the category with its carpet count, or nil when absent.
func (s *CategoryService) GetCategoryByID(ctx context.Context, q GetCategoryByIDQuery) (*dto.CategoryDto, error) {
	category, err := s.repo.GetByID(ctx, q.ID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	out := dto.NewCategoryDto(category)
	return &out, nil
}

// ListCategories returns every category with its carpet count.
func (s *CategoryService) ListCategories(ctx context.Context, _ ListCategoriesQuery) ([]dto.CategoryDto, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryDto, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryDto(&categories[i]))
	}
	return out, nil
}

func (s *CategoryService) inUseMessage(ctx context.Context) string {
	if s.catalog == nil {
		return categoryInUseMessage
	}
	return s.catalog.T(i18n.LocaleFromContext(ctx), i18n.KeyCategoryInUse, categoryInUseMessage)
}
