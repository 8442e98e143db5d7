package models

// Field limits for categories.
const (
	CategoryNameMaxLength        = 100
	CategoryDescriptionMaxLength = 500
)

// Field limits and business thresholds for carpets.
const (
	CarpetNameMaxLength        = 200
	CarpetDescriptionMaxLength = 1000
	CarpetColorMaxLength       = 50
	CarpetMaterialMaxLength    = 100

	DecimalScale = 2

	MinStockQuantity = 0
	MaxStockQuantity = 999999

	LowStockThreshold    = 10
	MediumStockThreshold = 50
)
