package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComboItemRepository interface {
	Create(ctx context.Context, combo *models.ComboItem) error
	FindByID(ctx context.Context, id uint) (*models.ComboItem, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.ComboItem, error)
	FindAll(ctx context.Context) ([]models.ComboItem, error)
	Save(ctx context.Context, combo *models.ComboItem) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type comboItemRepository struct {
	db *gorm.DB
}

func NewComboItemRepository(db *gorm.DB) ComboItemRepository {
	return &comboItemRepository{db: db}
}

func (r *comboItemRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *comboItemRepository) Create(ctx context.Context, combo *models.ComboItem) error {
	return r.db.WithContext(ctx).Create(combo).Error
}

func (r *comboItemRepository) FindByID(ctx context.Context, id uint) (*models.ComboItem, error) {
	var combo models.ComboItem
	if err := r.db.WithContext(ctx).First(&combo, id).Error; err != nil {
		return nil, err
	}
	return &combo, nil
}

// FindByIDForUpdate acquires a row-level lock on the combo item within the
// given transaction.
func (r *comboItemRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.ComboItem, error) {
	var combo models.ComboItem
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&combo, id).Error; err != nil {
		return nil, err
	}
	return &combo, nil
}

func (r *comboItemRepository) FindAll(ctx context.Context) ([]models.ComboItem, error) {
	var combos []models.ComboItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

func (r *comboItemRepository) Save(ctx context.Context, combo *models.ComboItem) error {
	return r.db.WithContext(ctx).Save(combo).Error
}

func (r *comboItemRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.ComboItem{}, id).Error
}
