package services

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/i18n"
	"carpetstore/internal/mediator"
	"carpetstore/internal/repositories"
	"carpetstore/internal/validation"
	"context"

	"github.com/google/uuid"
)

// Register binds every command and query to its handler and rule sets.
func Register(
	m *mediator.Mediator,
	v *validation.Validator,
	categoryRepo repositories.CategoryRepository,
	carpets *CarpetService,
	categories *CategoryService,
) {
	mediator.Register(m, carpets.CreateCarpet,
		validation.Struct(v, "create-carpet", func(c CreateCarpetCommand) any { return c.Carpet }),
		categoryExists(v, categoryRepo, func(c CreateCarpetCommand) string { return c.Carpet.CategoryID }),
	)
	mediator.Register(m, carpets.UpdateCarpet,
		validation.Struct(v, "update-carpet", func(c UpdateCarpetCommand) any { return c.Carpet }),
		categoryExists(v, categoryRepo, func(c UpdateCarpetCommand) string { return c.Carpet.CategoryID }),
	)
	mediator.Register(m, carpets.DeleteCarpet)
	mediator.Register(m, carpets.GetCarpetByID)
	mediator.Register(m, carpets.ListCarpets)

	mediator.Register(m, categories.CreateCategory,
		validation.Struct(v, "create-category", func(c CreateCategoryCommand) any { return c.Category }),
	)
	mediator.Register(m, categories.UpdateCategory,
		validation.Struct(v, "update-category", func(c UpdateCategoryCommand) any { return c.Category }),
	)
	mediator.Register(m, categories.DeleteCategory)
	mediator.Register(m, categories.GetCategoryByID)
	mediator.Register(m, categories.ListCategories)
}

// categoryExists fails on CategoryID when it names no stored category. Empty or
// malformed ids are left to the struct rules.
func categoryExists[T any](v *validation.Validator, repo repositories.CategoryRepository, pick func(T) string) validation.RuleSet[T] {
	return validation.Rules("category-exists", func(ctx context.Context, req T) ([]apperr.FieldFailure, error) {
		id := pick(req)
		if _, err := uuid.Parse(id); err != nil {
			return nil, nil
		}

		ok, err := repo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return nil, nil
		}
		return []apperr.FieldFailure{
			v.Failure(ctx, "CategoryID", "category_exists", i18n.KeyCategoryExists, "{0} does not reference an existing category"),
		}, nil
	})
}
