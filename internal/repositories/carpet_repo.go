package repositories

import (
	"carpetstore/internal/models"
	"context"
	"errors"
)

// ErrRecordNotFound is returned when a lookup by ID matches nothing.
var ErrRecordNotFound = errors.New("record not found")

// CarpetRepository defines the interface for carpet data access.
type CarpetRepository interface {
	GetAll(ctx context.Context, withCategory bool) ([]models.Carpet, error)
	GetByID(ctx context.Context, id string, withCategory bool) (*models.Carpet, error)
	LoadCategory(ctx context.Context, carpet *models.Carpet) error
	Create(ctx context.Context, carpet *models.Carpet) error
	Update(ctx context.Context, carpet *models.Carpet) error
	Delete(ctx context.Context, carpet *models.Carpet) error
}
