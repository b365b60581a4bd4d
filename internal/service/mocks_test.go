package service

import (
	"context"

	"cinemabackend/internal/models"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces. Tests set only the
// callbacks they exercise.

type mockMovieRepo struct {
	createFn            func(ctx context.Context, movie *models.Movie) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Movie, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Movie, error)
	findAllFn           func(ctx context.Context) ([]models.Movie, error)
	saveFn              func(ctx context.Context, movie *models.Movie) error
	deleteFn            func(ctx context.Context, tx *gorm.DB, id uint) error
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	return m.createFn(ctx, movie)
}
func (m *mockMovieRepo) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockMovieRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Movie, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockMovieRepo) FindAll(ctx context.Context) ([]models.Movie, error) {
	return m.findAllFn(ctx)
}
func (m *mockMovieRepo) Save(ctx context.Context, movie *models.Movie) error {
	return m.saveFn(ctx, movie)
}
func (m *mockMovieRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockMovieRepo) GetDB() *gorm.DB { return nil }

type mockRoomRepo struct {
	createFn            func(ctx context.Context, room *models.Room) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Room, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	findAllFn           func(ctx context.Context) ([]models.Room, error)
	saveFn              func(ctx context.Context, room *models.Room) error
	deleteFn            func(ctx context.Context, tx *gorm.DB, id uint) error
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	return m.createFn(ctx, room)
}
func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockRoomRepo) FindAll(ctx context.Context) ([]models.Room, error) {
	return m.findAllFn(ctx)
}
func (m *mockRoomRepo) Save(ctx context.Context, room *models.Room) error {
	return m.saveFn(ctx, room)
}
func (m *mockRoomRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockRoomRepo) GetDB() *gorm.DB { return nil }

type mockShowtimeRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Showtime, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Showtime, error)
	findAllFn           func(ctx context.Context) ([]models.Showtime, error)
	saveFn              func(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error
	deleteFn            func(ctx context.Context, tx *gorm.DB, id uint) error
	countByMovieIDFn    func(ctx context.Context, tx *gorm.DB, movieID uint) (int64, error)
	countByRoomIDFn     func(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
}

func (m *mockShowtimeRepo) Create(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error {
	return m.createFn(ctx, tx, showtime)
}
func (m *mockShowtimeRepo) FindByID(ctx context.Context, id uint) (*models.Showtime, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockShowtimeRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Showtime, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockShowtimeRepo) FindAll(ctx context.Context) ([]models.Showtime, error) {
	return m.findAllFn(ctx)
}
func (m *mockShowtimeRepo) Save(ctx context.Context, tx *gorm.DB, showtime *models.Showtime) error {
	return m.saveFn(ctx, tx, showtime)
}
func (m *mockShowtimeRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockShowtimeRepo) CountByMovieID(ctx context.Context, tx *gorm.DB, movieID uint) (int64, error) {
	return m.countByMovieIDFn(ctx, tx, movieID)
}
func (m *mockShowtimeRepo) CountByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	return m.countByRoomIDFn(ctx, tx, roomID)
}
func (m *mockShowtimeRepo) GetDB() *gorm.DB { return nil }

type mockTicketRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Ticket, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Ticket, error)
	findAllFn           func(ctx context.Context) ([]models.Ticket, error)
	findByShowtimeIDFn  func(ctx context.Context, tx *gorm.DB, showtimeID uint) (*models.Ticket, error)
	saveFn              func(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	deleteFn            func(ctx context.Context, tx *gorm.DB, id uint) error
}

func (m *mockTicketRepo) Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return m.createFn(ctx, tx, ticket)
}
func (m *mockTicketRepo) FindByID(ctx context.Context, id uint) (*models.Ticket, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTicketRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Ticket, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockTicketRepo) FindAll(ctx context.Context) ([]models.Ticket, error) {
	return m.findAllFn(ctx)
}
func (m *mockTicketRepo) FindByShowtimeID(ctx context.Context, tx *gorm.DB, showtimeID uint) (*models.Ticket, error) {
	return m.findByShowtimeIDFn(ctx, tx, showtimeID)
}
func (m *mockTicketRepo) Save(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return m.saveFn(ctx, tx, ticket)
}
func (m *mockTicketRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockTicketRepo) GetDB() *gorm.DB { return nil }

type mockComboRepo struct {
	createFn            func(ctx context.Context, combo *models.ComboItem) error
	findByIDFn          func(ctx context.Context, id uint) (*models.ComboItem, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.ComboItem, error)
	findAllFn           func(ctx context.Context) ([]models.ComboItem, error)
	saveFn              func(ctx context.Context, combo *models.ComboItem) error
	deleteFn            func(ctx context.Context, tx *gorm.DB, id uint) error
}

func (m *mockComboRepo) Create(ctx context.Context, combo *models.ComboItem) error {
	return m.createFn(ctx, combo)
}
func (m *mockComboRepo) FindByID(ctx context.Context, id uint) (*models.ComboItem, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockComboRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.ComboItem, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockComboRepo) FindAll(ctx context.Context) ([]models.ComboItem, error) {
	return m.findAllFn(ctx)
}
func (m *mockComboRepo) Save(ctx context.Context, combo *models.ComboItem) error {
	return m.saveFn(ctx, combo)
}
func (m *mockComboRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockComboRepo) GetDB() *gorm.DB { return nil }

type mockOrderRepo struct {
	createFn           func(ctx context.Context, tx *gorm.DB, order *models.Order) error
	findByIDFn         func(ctx context.Context, id uint) (*models.Order, error)
	findAllFn          func(ctx context.Context) ([]models.Order, error)
	saveFn             func(ctx context.Context, tx *gorm.DB, order *models.Order) error
	deleteFn           func(ctx context.Context, tx *gorm.DB, id uint) error
	countByTicketIDFn  func(ctx context.Context, tx *gorm.DB, ticketID uint) (int64, error)
	countByComboItemFn func(ctx context.Context, tx *gorm.DB, comboID uint) (int64, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return m.createFn(ctx, tx, order)
}
func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	return m.findAllFn(ctx)
}
func (m *mockOrderRepo) Save(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return m.saveFn(ctx, tx, order)
}
func (m *mockOrderRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockOrderRepo) CountByTicketID(ctx context.Context, tx *gorm.DB, ticketID uint) (int64, error) {
	return m.countByTicketIDFn(ctx, tx, ticketID)
}
func (m *mockOrderRepo) CountByComboItemID(ctx context.Context, tx *gorm.DB, comboID uint) (int64, error) {
	return m.countByComboItemFn(ctx, tx, comboID)
}
func (m *mockOrderRepo) GetDB() *gorm.DB { return nil }
