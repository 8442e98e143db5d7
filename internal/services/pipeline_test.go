package services_test

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/dto"
	"carpetstore/internal/i18n"
	"carpetstore/internal/mediator"
	"carpetstore/internal/models"
	"carpetstore/internal/repositories"
	"carpetstore/internal/services"
	"carpetstore/internal/validation"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pipeline struct {
	m  *mediator.Mediator
	db *gorm.DB
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := repositories.OpenDatabase(repositories.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, repositories.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	catalog, err := i18n.NewCatalog()
	require.NoError(t, err)
	v, err := validation.NewValidator(catalog)
	require.NoError(t, err)

	categoryRepo := repositories.NewGORMCategoryRepository(db)
	m := mediator.New(nil)
	services.Register(m, v, categoryRepo,
		services.NewCarpetService(repositories.NewGORMCarpetRepository(db), nil, nil),
		services.NewCategoryService(categoryRepo, catalog),
	)
	return &pipeline{m: m, db: db}
}

func (p *pipeline) createCategory(t *testing.T, name string) *dto.CategoryDto {
	t.Helper()
	out, err := mediator.Send[*dto.CategoryDto](context.Background(), p.m, services.CreateCategoryCommand{
		Category: dto.CreateCategoryDto{Name: name},
	})
	require.NoError(t, err)
	return out
}

func (p *pipeline) createCarpet(t *testing.T, in dto.CreateCarpetDto) *dto.CarpetDto {
	t.Helper()
	out, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.CreateCarpetCommand{Carpet: in})
	require.NoError(t, err)
	return out
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields()
}

func TestPipeline_CreateCarpetComputesDerivedValues(t *testing.T) {
	p := newPipeline(t)
	category := p.createCategory(t, "Persian")

	in := createCarpetInput(100)
	in.CategoryID = category.ID
	out := p.createCarpet(t, in)

	assert.Equal(t, "Persian", out.CategoryName)
	assert.True(t, out.Area.Equal(decimal.NewFromInt(12)))
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromInt(1800)))

	got, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.GetCarpetByIDQuery{ID: out.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Persian", got.CategoryName)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(1800)))
}

func TestPipeline_DeleteCategoryWithCarpetsIsRejected(t *testing.T) {
	p := newPipeline(t)
	category := p.createCategory(t, "Modern")

	in := createCarpetInput(20)
	in.CategoryID = category.ID
	carpet := p.createCarpet(t, in)

	deleted, err := mediator.Send[bool](context.Background(), p.m, services.DeleteCategoryCommand{ID: category.ID})
	assert.False(t, deleted)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := mediator.Send[*dto.CategoryDto](context.Background(), p.m, services.GetCategoryByIDQuery{ID: category.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.CarpetsCount)

	deleted, err = mediator.Send[bool](context.Background(), p.m, services.DeleteCarpetCommand{ID: carpet.ID})
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = mediator.Send[bool](context.Background(), p.m, services.DeleteCategoryCommand{ID: category.ID})
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = mediator.Send[bool](context.Background(), p.m, services.DeleteCategoryCommand{ID: category.ID})
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestPipeline_UpdateMissingCarpetIsNotFound(t *testing.T) {
	p := newPipeline(t)
	category := p.createCategory(t, "Modern")

	in := createCarpetInput(20)
	missing := uuid.NewString()
	_, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.UpdateCarpetCommand{Carpet: dto.UpdateCarpetDto{
		ID:                  missing,
		Name:                in.Name,
		Length:              in.Length,
		Width:               in.Width,
		Color:               in.Color,
		Material:            in.Material,
		PricePerSquareMeter: in.PricePerSquareMeter,
		StockQuantity:       in.StockQuantity,
		CategoryID:          category.ID,
	}})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), missing)
}

func TestPipeline_InvalidCategoryIsNotPersisted(t *testing.T) {
	p := newPipeline(t)

	_, err := mediator.Send[*dto.CategoryDto](context.Background(), p.m, services.CreateCategoryCommand{
		Category: dto.CreateCategoryDto{Name: ""},
	})
	assert.Equal(t, []string{"Name"}, failedFields(t, err))

	var count int64
	require.NoError(t, p.db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPipeline_BlankNamesAreNotPersisted(t *testing.T) {
	p := newPipeline(t)

	_, err := mediator.Send[*dto.CategoryDto](context.Background(), p.m, services.CreateCategoryCommand{
		Category: dto.CreateCategoryDto{Name: "   "},
	})
	assert.Equal(t, []string{"Name"}, failedFields(t, err))

	category := p.createCategory(t, "Persian")
	in := createCarpetInput(20)
	in.CategoryID = category.ID
	in.Name = " \t "
	in.Color = "  "
	in.Material = "\n"

	_, err = mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.CreateCarpetCommand{Carpet: in})
	assert.Equal(t, []string{"Name", "Color", "Material"}, failedFields(t, err))

	var categories, carpets int64
	require.NoError(t, p.db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, p.db.Model(&models.Carpet{}).Count(&carpets).Error)
	assert.Equal(t, int64(1), categories)
	assert.Zero(t, carpets)
}

func TestPipeline_ReportsEveryFailedField(t *testing.T) {
	p := newPipeline(t)
	category := p.createCategory(t, "Modern")

	in := createCarpetInput(20)
	in.CategoryID = category.ID
	in.Length = decimal.NewFromInt(150)
	in.Width = decimal.Zero

	_, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.CreateCarpetCommand{Carpet: in})

	fields := failedFields(t, err)
	assert.Contains(t, fields, "Length")
	assert.Contains(t, fields, "Width")
}

func TestPipeline_UnknownCategoryFailsValidation(t *testing.T) {
	p := newPipeline(t)

	in := createCarpetInput(20)
	in.CategoryID = uuid.NewString()

	_, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.CreateCarpetCommand{Carpet: in})

	assert.Equal(t, []string{"CategoryID"}, failedFields(t, err))

	var count int64
	require.NoError(t, p.db.Model(&models.Carpet{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPipeline_ListCarpetsAcrossCategories(t *testing.T) {
	p := newPipeline(t)
	persian := p.createCategory(t, "Persian")
	modern := p.createCategory(t, "Modern")

	a := createCarpetInput(5)
	a.Name = "Tabriz"
	a.CategoryID = persian.ID
	p.createCarpet(t, a)

	b := createCarpetInput(75)
	b.Name = "Grid"
	b.CategoryID = modern.ID
	p.createCarpet(t, b)

	out, err := mediator.Send[[]dto.CarpetDto](context.Background(), p.m, services.ListCarpetsQuery{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	byName := map[string]dto.CarpetDto{}
	for _, c := range out {
		byName[c.Name] = c
	}
	assert.Equal(t, "Persian", byName["Tabriz"].CategoryName)
	assert.Equal(t, models.StockLevelLow, byName["Tabriz"].StockLevel)
	assert.Equal(t, "Modern", byName["Grid"].CategoryName)
	assert.Equal(t, models.StockLevelHigh, byName["Grid"].StockLevel)

	categories, err := mediator.Send[[]dto.CategoryDto](context.Background(), p.m, services.ListCategoriesQuery{})
	require.NoError(t, err)
	require.Len(t, categories, 2)
	for _, c := range categories {
		assert.Equal(t, 1, c.CarpetsCount)
	}
}

func TestPipeline_UpdateMovesCarpetBetweenCategories(t *testing.T) {
	p := newPipeline(t)
	from := p.createCategory(t, "Persian")
	to := p.createCategory(t, "Modern")

	in := createCarpetInput(20)
	in.CategoryID = from.ID
	carpet := p.createCarpet(t, in)

	out, err := mediator.Send[*dto.CarpetDto](context.Background(), p.m, services.UpdateCarpetCommand{Carpet: dto.UpdateCarpetDto{
		ID:                  carpet.ID,
		Name:                "Moved",
		Length:              in.Length,
		Width:               in.Width,
		Color:               in.Color,
		Material:            in.Material,
		PricePerSquareMeter: in.PricePerSquareMeter,
		StockQuantity:       in.StockQuantity,
		CategoryID:          to.ID,
	}})
	require.NoError(t, err)
	assert.Equal(t, "Modern", out.CategoryName)
	assert.NotNil(t, out.UpdatedAt)

	deleted, err := mediator.Send[bool](context.Background(), p.m, services.DeleteCategoryCommand{ID: from.ID})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestPipeline_ArabicValidationMessages(t *testing.T) {
	p := newPipeline(t)
	ctx := i18n.WithLocale(context.Background(), "ar")

	_, err := mediator.Send[*dto.CategoryDto](ctx, p.m, services.CreateCategoryCommand{
		Category: dto.CreateCategoryDto{Name: ""},
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Failures, 1)
	assert.Contains(t, verr.Failures[0].Message, "مطلوب")
}

func TestPipeline_EveryKindIsRegistered(t *testing.T) {
	p := newPipeline(t)
	for _, kind := range []mediator.Kind{
		services.KindCreateCarpet, services.KindUpdateCarpet, services.KindDeleteCarpet,
		services.KindGetCarpet, services.KindListCarpets,
		services.KindCreateCategory, services.KindUpdateCategory, services.KindDeleteCategory,
		services.KindGetCategory, services.KindListCategories,
	} {
		assert.True(t, p.m.Registered(kind), kind)
	}
}
