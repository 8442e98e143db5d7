package repositories

import (
	"carpetstore/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCarpetRepository is a GORM implementation of CarpetRepository.
type GORMCarpetRepository struct {
	db *gorm.DB
}

// NewGORMCarpetRepository creates a new instance of GORMCarpetRepository.
func NewGORMCarpetRepository(db *gorm.DB) *GORMCarpetRepository {
	return &GORMCarpetRepository{
		db: db,
	}
}

// GetAll retrieves all carpets, optionally with their category.
func (r *GORMCarpetRepository) GetAll(ctx context.Context, withCategory bool) ([]models.Carpet, error) {
	var carpets []models.Carpet
	q := r.db.WithContext(ctx).Order("created_at, id")
	if withCategory {
		q = q.Preload("Category")
	}
	if err := q.Find(&carpets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all carpets: %w", err)
	}
	return carpets, nil
}

// GetByID retrieves a single carpet by its ID.
func (r *GORMCarpetRepository) GetByID(ctx context.Context, id string, withCategory bool) (*models.Carpet, error) {
	var carpet models.Carpet
	q := r.db.WithContext(ctx)
	if withCategory {
		q = q.Preload("Category")
	}
	if err := q.First(&carpet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("carpet with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get carpet by ID %s: %w", id, err)
	}
	return &carpet, nil
}

// LoadCategory (re)loads the category a carpet currently points at.
func (r *GORMCarpetRepository) LoadCategory(ctx context.Context, carpet *models.Carpet) error {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", carpet.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category with ID %s: %w", carpet.CategoryID, ErrRecordNotFound)
		}
		return fmt.Errorf("failed to load category of carpet %s: %w", carpet.ID, err)
	}
	carpet.Category = &category
	return nil
}

// Create inserts a new carpet. Associations are never written through.
func (r *GORMCarpetRepository) Create(ctx context.Context, carpet *models.Carpet) error {
	if carpet.ID == "" {
		carpet.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(carpet).Error; err != nil {
		return fmt.Errorf("failed to create carpet: %w", err)
	}
	return nil
}

// Update saves every column of an existing carpet.
func (r *GORMCarpetRepository) Update(ctx context.Context, carpet *models.Carpet) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(carpet)
	if res.Error != nil {
		return fmt.Errorf("failed to update carpet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("carpet with ID %s: %w", carpet.ID, ErrRecordNotFound)
	}
	return nil
}

// Delete removes a carpet.
func (r *GORMCarpetRepository) Delete(ctx context.Context, carpet *models.Carpet) error {
	res := r.db.WithContext(ctx).Delete(&models.Carpet{}, "id = ?", carpet.ID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete carpet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("carpet with ID %s: %w", carpet.ID, ErrRecordNotFound)
	}
	return nil
}
