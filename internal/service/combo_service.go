package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"gorm.io/gorm"
)

type ComboItemService interface {
	ListComboItems(ctx context.Context) ([]models.ComboItem, error)
	GetComboItem(ctx context.Context, id uint) (*models.ComboItem, error)
	CreateComboItem(ctx context.Context, combo *models.ComboItem) error
	UpdateComboItem(ctx context.Context, id uint, combo *models.ComboItem) error
	DeleteComboItem(ctx context.Context, id uint) error
}

type comboItemService struct {
	comboRepo repository.ComboItemRepository
	guard     IntegrityGuard
}

func NewComboItemService(comboRepo repository.ComboItemRepository, guard IntegrityGuard) ComboItemService {
	return &comboItemService{comboRepo: comboRepo, guard: guard}
}

func (s *comboItemService) ListComboItems(ctx context.Context) ([]models.ComboItem, error) {
	return s.comboRepo.FindAll(ctx)
}

func (s *comboItemService) GetComboItem(ctx context.Context, id uint) (*models.ComboItem, error) {
	combo, err := s.comboRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComboNotFound
		}
		return nil, err
	}
	return combo, nil
}

// Subtotal is taken as sent by the client, matching how orders trust their
// totals; nothing recomputes it from unit price and quantity.
func (s *comboItemService) CreateComboItem(ctx context.Context, combo *models.ComboItem) error {
	return s.comboRepo.Create(ctx, combo)
}

func (s *comboItemService) UpdateComboItem(ctx context.Context, id uint, combo *models.ComboItem) error {
	if _, err := s.GetComboItem(ctx, id); err != nil {
		return err
	}
	combo.ID = id
	return s.comboRepo.Save(ctx, combo)
}

func (s *comboItemService) DeleteComboItem(ctx context.Context, id uint) error {
	return s.comboRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.comboRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComboNotFound
			}
			return err
		}

		decision, err := s.guard.CanDeleteComboItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return &DeletionDeniedError{Entity: "combo item", Dependents: decision.Dependents, Reason: decision.Reason}
		}

		return s.comboRepo.Delete(ctx, tx, id)
	})
}
