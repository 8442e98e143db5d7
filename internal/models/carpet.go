package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel classifies a carpet's stock quantity.
type StockLevel string

const (
	StockLevelLow    StockLevel = "low"
	StockLevelMedium StockLevel = "medium"
	StockLevelHigh   StockLevel = "high"
)

// Carpet represents a carpet in the inventory. Dimensions are in meters.
type Carpet struct {
	ID                  string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name                string          `json:"name" gorm:"type:varchar(200);not null;index"`
	Description         string          `json:"description" gorm:"type:varchar(1000)"`
	Length              decimal.Decimal `json:"length" gorm:"type:decimal(18,2);not null"`
	Width               decimal.Decimal `json:"width" gorm:"type:decimal(18,2);not null"`
	Color               string          `json:"color" gorm:"type:varchar(50);not null;index"`
	Material            string          `json:"material" gorm:"type:varchar(100);not null;index"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter" gorm:"type:decimal(18,2);not null"`
	StockQuantity       int             `json:"stock_quantity" gorm:"not null;index"`
	CategoryID          string          `json:"category_id" gorm:"type:varchar(36);not null;index"`
	Category            *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt           time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt           *time.Time      `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TableName pins the table name used by gorm.
func (Carpet) TableName() string {
	return "carpets"
}

// Area returns Length × Width. It is computed on every call and never stored.
func (c *Carpet) Area() decimal.Decimal {
	return c.Length.Mul(c.Width)
}

// TotalPrice returns Area × PricePerSquareMeter.
func (c *Carpet) TotalPrice() decimal.Decimal {
	return c.Area().Mul(c.PricePerSquareMeter)
}

// StockLevel reports whether the carpet is low, medium or high on stock.
func (c *Carpet) StockLevel() StockLevel {
	switch {
	case c.StockQuantity < LowStockThreshold:
		return StockLevelLow
	case c.StockQuantity < MediumStockThreshold:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}
