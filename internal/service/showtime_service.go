package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"cinemabackend/pkg/rabbitmq"
	"gorm.io/gorm"
)

// Default pricing applied when a showtime is provisioned with its first
// ticket record.
const (
	defaultFullPrice = 20.0
	defaultHalfPrice = 10.0
)

type ShowtimeService interface {
	ListShowtimes(ctx context.Context) ([]models.Showtime, error)
	GetShowtime(ctx context.Context, id uint) (*models.Showtime, error)
	CreateShowtime(ctx context.Context, showtime *models.Showtime) error
	UpdateShowtime(ctx context.Context, id uint, showtime *models.Showtime) error
	DeleteShowtime(ctx context.Context, id uint) error
}

type showtimeService struct {
	showtimeRepo repository.ShowtimeRepository
	movieRepo    repository.MovieRepository
	roomRepo     repository.RoomRepository
	ticketRepo   repository.TicketRepository
	guard        IntegrityGuard
	publisher    *rabbitmq.Publisher
}

func NewShowtimeService(
	showtimeRepo repository.ShowtimeRepository,
	movieRepo repository.MovieRepository,
	roomRepo repository.RoomRepository,
	ticketRepo repository.TicketRepository,
	guard IntegrityGuard,
	publisher *rabbitmq.Publisher,
) ShowtimeService {
	return &showtimeService{
		showtimeRepo: showtimeRepo,
		movieRepo:    movieRepo,
		roomRepo:     roomRepo,
		ticketRepo:   ticketRepo,
		guard:        guard,
		publisher:    publisher,
	}
}

func (s *showtimeService) ListShowtimes(ctx context.Context) ([]models.Showtime, error) {
	return s.showtimeRepo.FindAll(ctx)
}

func (s *showtimeService) GetShowtime(ctx context.Context, id uint) (*models.Showtime, error) {
	showtime, err := s.showtimeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return showtime, nil
}

// CreateShowtime writes the showtime and provisions its default-priced
// ticket in one transaction, so a failed provisioning rolls back the
// showtime as well. The movie and room rows are locked while the showtime
// is written, so a concurrent delete cannot orphan it.
func (s *showtimeService) CreateShowtime(ctx context.Context, showtime *models.Showtime) error {
	err := s.showtimeRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resolveReferences(ctx, tx, showtime); err != nil {
			return err
		}

		if err := s.showtimeRepo.Create(ctx, tx, showtime); err != nil {
			return err
		}

		return s.provisionDefaultTicket(ctx, tx, showtime.ID)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("showtime.created", showtime)
	}
	return nil
}

// UpdateShowtime replaces the record; it never re-provisions or re-prices
// the showtime's ticket.
func (s *showtimeService) UpdateShowtime(ctx context.Context, id uint, showtime *models.Showtime) error {
	return s.showtimeRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.GetShowtime(ctx, id); err != nil {
			return err
		}
		if err := s.resolveReferences(ctx, tx, showtime); err != nil {
			return err
		}
		showtime.ID = id
		return s.showtimeRepo.Save(ctx, tx, showtime)
	})
}

// DeleteShowtime removes the showtime and, when the guard allows it, its
// ticket in the same transaction. This cascade is the one place a guarded
// delete takes a dependent with it.
func (s *showtimeService) DeleteShowtime(ctx context.Context, id uint) error {
	return s.showtimeRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.showtimeRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowtimeNotFound
			}
			return err
		}

		decision, err := s.guard.CanDeleteShowtime(ctx, tx, id)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return &DeletionDeniedError{Entity: "showtime", Dependents: decision.Dependents, Reason: decision.Reason}
		}

		ticket, err := s.ticketRepo.FindByShowtimeID(ctx, tx, id)
		switch {
		case err == nil:
			if err := s.ticketRepo.Delete(ctx, tx, ticket.ID); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return s.showtimeRepo.Delete(ctx, tx, id)
	})
}

// resolveReferences locks the movie and room rows for the duration of the
// caller's transaction; a parent that exists here still exists at commit.
func (s *showtimeService) resolveReferences(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error {
	if _, err := s.movieRepo.FindByIDForUpdate(ctx, tx, showtime.MovieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DanglingReferenceError{Entity: "movie", ID: showtime.MovieID}
		}
		return err
	}
	if _, err := s.roomRepo.FindByIDForUpdate(ctx, tx, showtime.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DanglingReferenceError{Entity: "room", ID: showtime.RoomID}
		}
		return err
	}
	return nil
}

// provisionDefaultTicket creates the showtime's ticket with default pricing
// unless one already exists. Safe to call more than once.
func (s *showtimeService) provisionDefaultTicket(ctx context.Context, tx *gorm.DB, showtimeID uint) error {
	_, err := s.ticketRepo.FindByShowtimeID(ctx, tx, showtimeID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	ticket := &models.Ticket{
		ShowtimeID: showtimeID,
		FullPrice:  defaultFullPrice,
		HalfPrice:  defaultHalfPrice,
	}
	return s.ticketRepo.Create(ctx, tx, ticket)
}
