package dto

import (
	"carpetstore/internal/models"
	"time"
)

// CreateCategoryDto is the input of the create category command.
type CreateCategoryDto struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryDto replaces the name and description of an existing category.
type UpdateCategoryDto struct {
	ID          string `json:"id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryDto is the response shape of every operation returning a category.
type CategoryDto struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CarpetsCount int        `json:"carpets_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NewCategoryDto shapes a category for a response. CarpetsCount is the number of
// carpets loaded on the entity.
func NewCategoryDto(c *models.Category) CategoryDto {
	return CategoryDto{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		CarpetsCount: len(c.Carpets),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
