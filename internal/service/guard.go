package service

import (
	"context"
	"errors"
	"fmt"

	"cinemabackend/internal/repository"
	"gorm.io/gorm"
)

// Decision is the outcome of a referential-integrity check. When Allowed is
// false, Dependents holds the number of records blocking the delete and
// Reason is the human-readable explanation surfaced to the client.
type Decision struct {
	Allowed    bool
	Dependents int64
	Reason     string
}

// IntegrityGuard decides whether deleting an entity would orphan records
// that reference it. All checks are read-only and run against the caller's
// transaction so the decision and the delete share one isolation boundary.
// A guard never fails because the target itself is missing; existence is the
// caller's concern.
type IntegrityGuard interface {
	CanDeleteMovie(ctx context.Context, tx *gorm.DB, movieID uint) (Decision, error)
	CanDeleteRoom(ctx context.Context, tx *gorm.DB, roomID uint) (Decision, error)
	CanDeleteShowtime(ctx context.Context, tx *gorm.DB, showtimeID uint) (Decision, error)
	CanDeleteComboItem(ctx context.Context, tx *gorm.DB, comboID uint) (Decision, error)
}

type integrityGuard struct {
	showtimeRepo repository.ShowtimeRepository
	ticketRepo   repository.TicketRepository
	orderRepo    repository.OrderRepository
}

func NewIntegrityGuard(
	showtimeRepo repository.ShowtimeRepository,
	ticketRepo repository.TicketRepository,
	orderRepo repository.OrderRepository,
) IntegrityGuard {
	return &integrityGuard{
		showtimeRepo: showtimeRepo,
		ticketRepo:   ticketRepo,
		orderRepo:    orderRepo,
	}
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(count int64, reason string) Decision {
	return Decision{Allowed: false, Dependents: count, Reason: reason}
}

func (g *integrityGuard) CanDeleteMovie(ctx context.Context, tx *gorm.DB, movieID uint) (Decision, error) {
	count, err := g.showtimeRepo.CountByMovieID(ctx, tx, movieID)
	if err != nil {
		return Decision{}, err
	}
	if count > 0 {
		return denied(count, fmt.Sprintf("cannot delete movie: %d showtime(s) reference it", count)), nil
	}
	return allowed(), nil
}

func (g *integrityGuard) CanDeleteRoom(ctx context.Context, tx *gorm.DB, roomID uint) (Decision, error) {
	count, err := g.showtimeRepo.CountByRoomID(ctx, tx, roomID)
	if err != nil {
		return Decision{}, err
	}
	if count > 0 {
		return denied(count, fmt.Sprintf("cannot delete room: %d showtime(s) reference it", count)), nil
	}
	return allowed(), nil
}

// CanDeleteShowtime checks orders hanging off the showtime's ticket. A
// showtime without a ticket has nothing depending on it and may always go;
// the cascade that removes the ticket itself belongs to the delete, not to
// this check.
func (g *integrityGuard) CanDeleteShowtime(ctx context.Context, tx *gorm.DB, showtimeID uint) (Decision, error) {
	ticket, err := g.ticketRepo.FindByShowtimeID(ctx, tx, showtimeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return allowed(), nil
		}
		return Decision{}, err
	}

	count, err := g.orderRepo.CountByTicketID(ctx, tx, ticket.ID)
	if err != nil {
		return Decision{}, err
	}
	if count > 0 {
		return denied(count, fmt.Sprintf("cannot delete showtime: %d order(s) reference its ticket", count)), nil
	}
	return allowed(), nil
}

func (g *integrityGuard) CanDeleteComboItem(ctx context.Context, tx *gorm.DB, comboID uint) (Decision, error) {
	count, err := g.orderRepo.CountByComboItemID(ctx, tx, comboID)
	if err != nil {
		return Decision{}, err
	}
	if count > 0 {
		return denied(count, fmt.Sprintf("cannot delete combo item: %d order(s) include it", count)), nil
	}
	return allowed(), nil
}
