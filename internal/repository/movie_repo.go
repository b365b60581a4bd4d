package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	Save(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByIDForUpdate acquires a row-level lock on the movie within the given
// transaction.
func (r *movieRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Save(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Movie{}, id).Error
}
