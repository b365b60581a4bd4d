package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, tx *gorm.DB, order *models.Order) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByTicketID(ctx context.Context, tx *gorm.DB, ticketID uint) (int64, error)
	// CountByComboItemID counts DISTINCT orders whose combo set includes the
	// item, not occurrences within an order.
	CountByComboItemID(ctx context.Context, tx *gorm.DB, comboID uint) (int64, error)
	GetDB() *gorm.DB
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *orderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	// Omit("Combos.*") links existing combo items without rewriting their rows.
	return tx.WithContext(ctx).Omit("Combos.*").Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("Combos").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Preload("Combos").Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	if err := tx.WithContext(ctx).Omit("Combos").Save(order).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Model(order).Association("Combos").Replace(order.Combos)
}

func (r *orderRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	// Select(clause.Associations) removes the join-table rows with the order.
	return tx.WithContext(ctx).Select(clause.Associations).Delete(&models.Order{ID: id}).Error
}

func (r *orderRepository) CountByTicketID(ctx context.Context, tx *gorm.DB, ticketID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Order{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByComboItemID(ctx context.Context, tx *gorm.DB, comboID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Table("order_combo_items").
		Where("combo_item_id = ?", comboID).
		Distinct("order_id").
		Count(&count).Error
	return count, err
}
