package validation_test

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/dto"
	"carpetstore/internal/i18n"
	"carpetstore/internal/validation"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	catalog, err := i18n.NewCatalog()
	require.NoError(t, err)
	v, err := validation.NewValidator(catalog)
	require.NoError(t, err)
	return v
}

func validCarpet() dto.CreateCarpetDto {
	return dto.CreateCarpetDto{
		Name:                "Tabriz",
		Description:         "Hand-knotted wool",
		Length:              decimal.RequireFromString("4.00"),
		Width:               decimal.RequireFromString("3.00"),
		Color:               "Red",
		Material:            "Wool",
		PricePerSquareMeter: decimal.RequireFromString("150.00"),
		StockQuantity:       5,
		CategoryID:          uuid.NewString(),
	}
}

func fields(failures []apperr.FieldFailure) []string {
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, f.Field)
	}
	return out
}

func TestValidator_ValidCarpet(t *testing.T) {
	v := newValidator(t)

	failures, err := v.Struct(context.Background(), validCarpet())
	assert.NoError(t, err)
	assert.Empty(t, failures)
}

func TestValidator_CarpetRules(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		mutate func(*dto.CreateCarpetDto)
		field  string
		tag    string
	}{
		{"empty name", func(c *dto.CreateCarpetDto) { c.Name = "" }, "Name", "required"},
		{"blank name", func(c *dto.CreateCarpetDto) { c.Name = "   " }, "Name", "notblank"},
		{"long name", func(c *dto.CreateCarpetDto) { c.Name = strings.Repeat("n", 201) }, "Name", "max"},
		{"long description", func(c *dto.CreateCarpetDto) { c.Description = strings.Repeat("d", 1001) }, "Description", "max"},
		{"length too big", func(c *dto.CreateCarpetDto) { c.Length = decimal.NewFromInt(150) }, "Length", "between"},
		{"width too small", func(c *dto.CreateCarpetDto) { c.Width = decimal.RequireFromString("0.09") }, "Width", "between"},
		{"empty color", func(c *dto.CreateCarpetDto) { c.Color = "" }, "Color", "required"},
		{"blank color", func(c *dto.CreateCarpetDto) { c.Color = "\t " }, "Color", "notblank"},
		{"long color", func(c *dto.CreateCarpetDto) { c.Color = strings.Repeat("c", 51) }, "Color", "max"},
		{"empty material", func(c *dto.CreateCarpetDto) { c.Material = "" }, "Material", "required"},
		{"blank material", func(c *dto.CreateCarpetDto) { c.Material = " \n" }, "Material", "notblank"},
		{"long material", func(c *dto.CreateCarpetDto) { c.Material = strings.Repeat("m", 101) }, "Material", "max"},
		{"zero price", func(c *dto.CreateCarpetDto) { c.PricePerSquareMeter = decimal.Zero }, "PricePerSquareMeter", "between"},
		{"price too big", func(c *dto.CreateCarpetDto) { c.PricePerSquareMeter = decimal.RequireFromString("1000000.01") }, "PricePerSquareMeter", "between"},
		{"price scale", func(c *dto.CreateCarpetDto) { c.PricePerSquareMeter = decimal.RequireFromString("10.005") }, "PricePerSquareMeter", "scale"},
		{"negative stock", func(c *dto.CreateCarpetDto) { c.StockQuantity = -1 }, "StockQuantity", "between"},
		{"stock too big", func(c *dto.CreateCarpetDto) { c.StockQuantity = 1000000 }, "StockQuantity", "between"},
		{"missing category", func(c *dto.CreateCarpetDto) { c.CategoryID = "" }, "CategoryID", "required"},
		{"bad category id", func(c *dto.CreateCarpetDto) { c.CategoryID = "rugs" }, "CategoryID", "uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carpet := validCarpet()
			tt.mutate(&carpet)

			failures, err := v.Struct(context.Background(), carpet)
			require.NoError(t, err)
			require.Len(t, failures, 1)
			assert.Equal(t, tt.field, failures[0].Field)
			assert.Equal(t, tt.tag, failures[0].Tag)
			assert.NotEmpty(t, failures[0].Message)
		})
	}
}

func TestValidator_BoundsAreInclusive(t *testing.T) {
	v := newValidator(t)

	carpet := validCarpet()
	carpet.Length = decimal.RequireFromString("0.1")
	carpet.Width = decimal.NewFromInt(100)
	carpet.PricePerSquareMeter = decimal.RequireFromString("1000000")
	carpet.StockQuantity = 0

	failures, err := v.Struct(context.Background(), carpet)
	require.NoError(t, err)
	assert.Empty(t, failures)

	// Trailing zeros do not count against the scale.
	carpet.PricePerSquareMeter = decimal.RequireFromString("12.5000")
	failures, err = v.Struct(context.Background(), carpet)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestValidator_ReportsAllFailuresTogether(t *testing.T) {
	v := newValidator(t)

	carpet := validCarpet()
	carpet.Length = decimal.NewFromInt(150)
	carpet.Width = decimal.Zero

	failures, err := v.Struct(context.Background(), carpet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Length", "Width"}, fields(failures))
	assert.Equal(t, "Length must be between 0.1 and 100", failures[0].Message)
	assert.Equal(t, "Width must be between 0.1 and 100", failures[1].Message)
}

func TestValidator_CategoryRules(t *testing.T) {
	v := newValidator(t)

	failures, err := v.Struct(context.Background(), dto.CreateCategoryDto{Name: ""})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "Name", failures[0].Field)
	assert.Equal(t, "Name is required", failures[0].Message)

	failures, err = v.Struct(context.Background(), dto.CreateCategoryDto{Name: "   "})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "notblank", failures[0].Tag)
	assert.Equal(t, "Name is required", failures[0].Message)

	failures, err = v.Struct(context.Background(), dto.UpdateCategoryDto{
		Name:        strings.Repeat("x", 101),
		Description: strings.Repeat("y", 501),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name", "Description"}, fields(failures))
}

func TestValidator_UpdateCarpetRequiresID(t *testing.T) {
	v := newValidator(t)

	c := validCarpet()
	update := dto.UpdateCarpetDto{
		Name:                c.Name,
		Length:              c.Length,
		Width:               c.Width,
		Color:               c.Color,
		Material:            c.Material,
		PricePerSquareMeter: c.PricePerSquareMeter,
		StockQuantity:       c.StockQuantity,
		CategoryID:          c.CategoryID,
	}

	failures, err := v.Struct(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID"}, fields(failures))

	update.ID = uuid.NewString()
	failures, err = v.Struct(context.Background(), update)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestValidator_LocalizedMessages(t *testing.T) {
	v := newValidator(t)
	ctx := i18n.WithLocale(context.Background(), "ar")

	failures, err := v.Struct(ctx, dto.CreateCategoryDto{})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "Name", failures[0].Field)
	assert.Equal(t, "الاسم مطلوب", failures[0].Message)
}

func TestValidator_Failure(t *testing.T) {
	v := newValidator(t)

	f := v.Failure(context.Background(), "CategoryID", "category_exists", i18n.KeyCategoryExists, "{0} does not reference an existing category")
	assert.Equal(t, "CategoryID", f.Field)
	assert.Equal(t, "CategoryID does not reference an existing category", f.Message)
}
