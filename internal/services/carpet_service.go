package services

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/dto"
	"carpetstore/internal/models"
	"carpetstore/internal/repositories"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CarpetService handles the carpet commands and queries.
type CarpetService struct {
	repo   repositories.CarpetRepository
	alerts Publisher
	log    *zap.Logger
	now    func() time.Time
}

// NewCarpetService creates a new CarpetService. alerts may be nil, in which case
// low-stock alerts are not sent.
func NewCarpetService(repo repositories.CarpetRepository, alerts Publisher, log *zap.Logger) *CarpetService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CarpetService{
		repo:   repo,
		alerts: alerts,
		log:    log.Named("carpets"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateCarpet stores a new carpet and returns it with its category name.
func (s *CarpetService) CreateCarpet(ctx context.Context, cmd CreateCarpetCommand) (*dto.CarpetDto, error) {
	in := cmd.Carpet
	carpet := &models.Carpet{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		Description:         in.Description,
		Length:              in.Length,
		Width:               in.Width,
		Color:               in.Color,
		Material:            in.Material,
		PricePerSquareMeter: in.PricePerSquareMeter,
		StockQuantity:       in.StockQuantity,
		CategoryID:          in.CategoryID,
		CreatedAt:           s.now(),
	}

	if err := s.repo.Create(ctx, carpet); err != nil {
		return nil, err
	}
	if err := s.repo.LoadCategory(ctx, carpet); err != nil {
		return nil, err
	}

	s.notifyLowStock(ctx, carpet)
	out := dto.NewCarpetDto(carpet)
	return &out, nil
}

// UpdateCarpet overwrites every mutable field of an existing carpet.
func (s *CarpetService) UpdateCarpet(ctx context.Context, cmd UpdateCarpetCommand) (*dto.CarpetDto, error) {
	in := cmd.Carpet
	carpet, err := s.repo.GetByID(ctx, in.ID, false)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperr.NotFound("carpet", in.ID)
		}
		return nil, err
	}

	now := s.now()
	carpet.Name = in.Name
	carpet.Description = in.Description
	carpet.Length = in.Length
	carpet.Width = in.Width
	carpet.Color = in.Color
	carpet.Material = in.Material
	carpet.PricePerSquareMeter = in.PricePerSquareMeter
	carpet.StockQuantity = in.StockQuantity
	carpet.CategoryID = in.CategoryID
	carpet.UpdatedAt = &now

	if err := s.repo.Update(ctx, carpet); err != nil {
		return nil, err
	}
	if err := s.repo.LoadCategory(ctx, carpet); err != nil {
		return nil, err
	}

	s.notifyLowStock(ctx, carpet)
	out := dto.NewCarpetDto(carpet)
	return &out, nil
}

// DeleteCarpet removes a carpet. It reports false when the carpet does not exist.
func (s *CarpetService) DeleteCarpet(ctx context.Context, cmd DeleteCarpetCommand) (bool, error) {
	carpet, err := s.repo.GetByID(ctx, cmd.ID, false)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.repo.Delete(ctx, carpet); err != nil {
		return false, err
	}
	return true, nil
}

// GetCarpetByID returns the carpet with its category name, or nil when absent.
func (s *CarpetService) GetCarpetByID(ctx context.Context, q GetCarpetByIDQuery) (*dto.CarpetDto, error) {
	carpet, err := s.repo.GetByID(ctx, q.ID, true)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	out := dto.NewCarpetDto(carpet)
	return &out, nil
}

// ListCarpets returns every carpet with its category name.
func (s *CarpetService) ListCarpets(ctx context.Context, _ ListCarpetsQuery) ([]dto.CarpetDto, error) {
	carpets, err := s.repo.GetAll(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CarpetDto, 0, len(carpets))
	for i := range carpets {
		out = append(out, dto.NewCarpetDto(&carpets[i]))
	}
	return out, nil
}

// notifyLowStock publishes a stock alert for carpets on low stock. Failures are
// logged only; the carpet has already been saved.
func (s *CarpetService) notifyLowStock(ctx context.Context, carpet *models.Carpet) {
	if s.alerts == nil || carpet.StockLevel() != models.StockLevelLow {
		return
	}

	body, err := json.Marshal(StockAlert{
		CarpetID:      carpet.ID,
		Name:          carpet.Name,
		StockQuantity: carpet.StockQuantity,
		Level:         carpet.StockLevel(),
	})
	if err != nil {
		s.log.Warn("failed to marshal stock alert", zap.String("carpet_id", carpet.ID), zap.Error(err))
		return
	}

	if err := s.alerts.Publish(ctx, StockAlertQueue, body); err != nil {
		s.log.Warn("failed to publish stock alert", zap.String("carpet_id", carpet.ID), zap.Error(fmt.Errorf("publish: %w", err)))
		return
	}
	s.log.Debug("stock alert published", zap.String("carpet_id", carpet.ID), zap.Int("stock", carpet.StockQuantity))
}
