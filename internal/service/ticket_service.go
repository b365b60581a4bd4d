package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"gorm.io/gorm"
)

// TicketService allows direct ticket management alongside the provisioning
// policy. One-ticket-per-showtime is a convention kept by provisioning, not
// a hard rule enforced here.
type TicketService interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id uint) (*models.Ticket, error)
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	UpdateTicket(ctx context.Context, id uint, ticket *models.Ticket) error
	DeleteTicket(ctx context.Context, id uint) error
}

type ticketService struct {
	ticketRepo   repository.TicketRepository
	showtimeRepo repository.ShowtimeRepository
}

func NewTicketService(ticketRepo repository.TicketRepository, showtimeRepo repository.ShowtimeRepository) TicketService {
	return &ticketService{ticketRepo: ticketRepo, showtimeRepo: showtimeRepo}
}

func (s *ticketService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.ticketRepo.FindAll(ctx)
}

func (s *ticketService) GetTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return s.ticketRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resolveShowtime(ctx, tx, ticket.ShowtimeID); err != nil {
			return err
		}
		return s.ticketRepo.Create(ctx, tx, ticket)
	})
}

func (s *ticketService) UpdateTicket(ctx context.Context, id uint, ticket *models.Ticket) error {
	return s.ticketRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.GetTicket(ctx, id); err != nil {
			return err
		}
		if err := s.resolveShowtime(ctx, tx, ticket.ShowtimeID); err != nil {
			return err
		}
		ticket.ID = id
		return s.ticketRepo.Save(ctx, tx, ticket)
	})
}

func (s *ticketService) DeleteTicket(ctx context.Context, id uint) error {
	if _, err := s.GetTicket(ctx, id); err != nil {
		return err
	}
	return s.ticketRepo.Delete(ctx, s.ticketRepo.GetDB(), id)
}

// resolveShowtime locks the showtime row so it cannot be deleted while the
// ticket referencing it is written.
func (s *ticketService) resolveShowtime(ctx context.Context, tx *gorm.DB, showtimeID uint) error {
	if _, err := s.showtimeRepo.FindByIDForUpdate(ctx, tx, showtimeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DanglingReferenceError{Entity: "showtime", ID: showtimeID}
		}
		return err
	}
	return nil
}
