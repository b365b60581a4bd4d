package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"cinemabackend/pkg/rabbitmq"
	"gorm.io/gorm"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order, comboIDs []uint) error
	UpdateOrder(ctx context.Context, id uint, order *models.Order, comboIDs []uint) error
	DeleteOrder(ctx context.Context, id uint) error
}

type orderService struct {
	orderRepo  repository.OrderRepository
	ticketRepo repository.TicketRepository
	comboRepo  repository.ComboItemRepository
	publisher  *rabbitmq.Publisher
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	comboRepo repository.ComboItemRepository,
	publisher *rabbitmq.Publisher,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		ticketRepo: ticketRepo,
		comboRepo:  comboRepo,
		publisher:  publisher,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder resolves the ticket and every combo id before writing; the
// total and payment method are stored as sent, never recomputed.
func (s *orderService) CreateOrder(ctx context.Context, order *models.Order, comboIDs []uint) error {
	err := s.orderRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resolveReferences(ctx, tx, order, comboIDs); err != nil {
			return err
		}
		return s.orderRepo.Create(ctx, tx, order)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("order.created", order)
	}
	return nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id uint, order *models.Order, comboIDs []uint) error {
	return s.orderRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.GetOrder(ctx, id); err != nil {
			return err
		}
		if err := s.resolveReferences(ctx, tx, order, comboIDs); err != nil {
			return err
		}
		order.ID = id
		return s.orderRepo.Save(ctx, tx, order)
	})
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.GetOrder(ctx, id); err != nil {
			return err
		}
		return s.orderRepo.Delete(ctx, tx, id)
	})
}

// resolveReferences locks the ticket and every combo row for the caller's
// transaction, so none of them can be deleted under a committing order.
func (s *orderService) resolveReferences(ctx context.Context, tx *gorm.DB, order *models.Order, comboIDs []uint) error {
	if _, err := s.ticketRepo.FindByIDForUpdate(ctx, tx, order.TicketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DanglingReferenceError{Entity: "ticket", ID: order.TicketID}
		}
		return err
	}

	combos := make([]models.ComboItem, 0, len(comboIDs))
	for _, comboID := range comboIDs {
		combo, err := s.comboRepo.FindByIDForUpdate(ctx, tx, comboID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &DanglingReferenceError{Entity: "combo item", ID: comboID}
			}
			return err
		}
		combos = append(combos, *combo)
	}
	order.Combos = combos
	return nil
}
