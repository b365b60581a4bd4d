package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error
	FindByID(ctx context.Context, id uint) (*models.Showtime, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Showtime, error)
	FindAll(ctx context.Context) ([]models.Showtime, error)
	Save(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByMovieID(ctx context.Context, tx *gorm.DB, movieID uint) (int64, error)
	CountByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
	GetDB() *gorm.DB
}

type showtimeRepository struct {
	db *gorm.DB
}

func NewShowtimeRepository(db *gorm.DB) ShowtimeRepository {
	return &showtimeRepository{db: db}
}

func (r *showtimeRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *showtimeRepository) Create(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error {
	return tx.WithContext(ctx).Create(showtime).Error
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uint) (*models.Showtime, error) {
	var showtime models.Showtime
	if err := r.db.WithContext(ctx).First(&showtime, id).Error; err != nil {
		return nil, err
	}
	return &showtime, nil
}

// FindByIDForUpdate acquires a row-level lock on the showtime within the
// given transaction.
func (r *showtimeRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Showtime, error) {
	var showtime models.Showtime
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&showtime, id).Error; err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]models.Showtime, error) {
	var showtimes []models.Showtime
	if err := r.db.WithContext(ctx).Order("starts_at ASC, id ASC").Find(&showtimes).Error; err != nil {
		return nil, err
	}
	return showtimes, nil
}

func (r *showtimeRepository) Save(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error {
	return tx.WithContext(ctx).Save(showtime).Error
}

func (r *showtimeRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Showtime{}, id).Error
}

func (r *showtimeRepository) CountByMovieID(ctx context.Context, tx *gorm.DB, movieID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Showtime{}).
		Where("movie_id = ?", movieID).
		Count(&count).Error
	return count, err
}

func (r *showtimeRepository) CountByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Showtime{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
