// Package dto holds the request and response shapes exchanged with callers.
package dto

import (
	"carpetstore/internal/models"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCarpetDto is the input of the create carpet command.
type CreateCarpetDto struct {
	Name                string          `json:"name" validate:"required,notblank,max=200"`
	Description         string          `json:"description" validate:"max=1000"`
	Length              decimal.Decimal `json:"length" validate:"between=0.1 100"`
	Width               decimal.Decimal `json:"width" validate:"between=0.1 100"`
	Color               string          `json:"color" validate:"required,notblank,max=50"`
	Material            string          `json:"material" validate:"required,notblank,max=100"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter" validate:"between=0.01 1000000,scale=2"`
	StockQuantity       int             `json:"stock_quantity" validate:"between=0 999999"`
	CategoryID          string          `json:"category_id" validate:"required,uuid"`
}

// UpdateCarpetDto replaces every mutable field of an existing carpet.
type UpdateCarpetDto struct {
	ID                  string          `json:"id" validate:"required,uuid"`
	Name                string          `json:"name" validate:"required,notblank,max=200"`
	Description         string          `json:"description" validate:"max=1000"`
	Length              decimal.Decimal `json:"length" validate:"between=0.1 100"`
	Width               decimal.Decimal `json:"width" validate:"between=0.1 100"`
	Color               string          `json:"color" validate:"required,notblank,max=50"`
	Material            string          `json:"material" validate:"required,notblank,max=100"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter" validate:"between=0.01 1000000,scale=2"`
	StockQuantity       int             `json:"stock_quantity" validate:"between=0 999999"`
	CategoryID          string          `json:"category_id" validate:"required,uuid"`
}

// CarpetDto is the response shape of every operation returning a carpet.
type CarpetDto struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Length              decimal.Decimal   `json:"length"`
	Width               decimal.Decimal   `json:"width"`
	Color               string            `json:"color"`
	Material            string            `json:"material"`
	PricePerSquareMeter decimal.Decimal   `json:"price_per_square_meter"`
	StockQuantity       int               `json:"stock_quantity"`
	StockLevel          models.StockLevel `json:"stock_level"`
	CategoryID          string            `json:"category_id"`
	CategoryName        string            `json:"category_name"`
	Area                decimal.Decimal   `json:"area"`
	TotalPrice          decimal.Decimal   `json:"total_price"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at"`
}

// NewCarpetDto shapes a carpet for a response. Derived values are taken from the
// entity as it is now; CategoryName is empty when the category was not loaded.
func NewCarpetDto(c *models.Carpet) CarpetDto {
	out := CarpetDto{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		Length:              c.Length,
		Width:               c.Width,
		Color:               c.Color,
		Material:            c.Material,
		PricePerSquareMeter: c.PricePerSquareMeter,
		StockQuantity:       c.StockQuantity,
		StockLevel:          c.StockLevel(),
		CategoryID:          c.CategoryID,
		Area:                c.Area(),
		TotalPrice:          c.TotalPrice(),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if c.Category != nil {
		out.CategoryName = c.Category.Name
	}
	return out
}
