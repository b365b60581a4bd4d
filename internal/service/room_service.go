package service

import (
	"context"
	"errors"

	"cinemabackend/internal/models"
	"cinemabackend/internal/repository"
	"gorm.io/gorm"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, id uint, room *models.Room) error
	DeleteRoom(ctx context.Context, id uint) error
}

type roomService struct {
	roomRepo repository.RoomRepository
	guard    IntegrityGuard
}

func NewRoomService(roomRepo repository.RoomRepository, guard IntegrityGuard) RoomService {
	return &roomService{roomRepo: roomRepo, guard: guard}
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.Seats == nil {
		room.Seats = models.SeatMap{}
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) UpdateRoom(ctx context.Context, id uint, room *models.Room) error {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return err
	}
	if room.Seats == nil {
		room.Seats = models.SeatMap{}
	}
	room.ID = id
	return s.roomRepo.Save(ctx, room)
}

func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	return s.roomRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.roomRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		decision, err := s.guard.CanDeleteRoom(ctx, tx, id)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return &DeletionDeniedError{Entity: "room", Dependents: decision.Dependents, Reason: decision.Reason}
		}

		return s.roomRepo.Delete(ctx, tx, id)
	})
}
