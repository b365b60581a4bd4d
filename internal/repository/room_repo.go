package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	Save(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Room{}, id).Error
}
