package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"gorm.io/gorm"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
}

type movieService struct {
	movieRepo repository.MovieRepository
	guard     IntegrityGuard
}

func NewMovieService(movieRepo repository.MovieRepository, guard IntegrityGuard) MovieService {
	return &movieService{movieRepo: movieRepo, guard: guard}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.FindAll(ctx)
}

func (s *movieService) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	return s.movieRepo.Create(ctx, movie)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error {
	if _, err := s.GetMovie(ctx, id); err != nil {
		return err
	}
	movie.ID = id
	return s.movieRepo.Save(ctx, movie)
}

// DeleteMovie locks the movie row before counting dependents so a showtime
// cannot slip in between the check and the delete.
func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	return s.movieRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.movieRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}

		decision, err := s.guard.CanDeleteMovie(ctx, tx, id)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return &DeletionDeniedError{Entity: "movie", Dependents: decision.Dependents, Reason: decision.Reason}
		}

		return s.movieRepo.Delete(ctx, tx, id)
	})
}
