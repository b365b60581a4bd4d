package repository

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepository interface {
	Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	FindByID(ctx context.Context, id uint) (*models.Ticket, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Ticket, error)
	FindAll(ctx context.Context) ([]models.Ticket, error)
	// FindByShowtimeID returns the showtime's ticket, or gorm.ErrRecordNotFound
	// when the showtime has none.
	FindByShowtimeID(ctx context.Context, tx *gorm.DB, showtimeID uint) (*models.Ticket, error)
	Save(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *ticketRepository) Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return tx.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindByIDForUpdate acquires a row-level lock on the ticket within the given
// transaction.
func (r *ticketRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) FindByShowtimeID(ctx context.Context, tx *gorm.DB, showtimeID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := tx.WithContext(ctx).
		Where("showtime_id = ?", showtimeID).
		Order("id ASC").
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Save(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return tx.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Ticket{}, id).Error
}
