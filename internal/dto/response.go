package dto

import (
	"time"

	"cinemabackend/internal/models"
)

type MovieResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Synopsis        string    `json:"synopsis"`
	Rating          string    `json:"rating"`
	DurationMinutes int       `json:"duration_minutes"`
	Cast            string    `json:"cast"`
	Genre           string    `json:"genre"`
	ExhibitionStart time.Time `json:"exhibition_start"`
	ExhibitionEnd   time.Time `json:"exhibition_end"`
	CreatedAt       time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID        uint      `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	Seats     [][]int   `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

type ShowtimeResponse struct {
	ID        uint      `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	MovieID   uint      `json:"movie_id"`
	RoomID    uint      `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID         uint      `json:"id"`
	FullPrice  float64   `json:"full_price"`
	HalfPrice  float64   `json:"half_price"`
	ShowtimeID uint      `json:"showtime_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ComboItemResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID              uint      `json:"id"`
	OrderedAt       time.Time `json:"ordered_at"`
	HalfTicketCount int       `json:"half_ticket_count"`
	FullTicketCount int       `json:"full_ticket_count"`
	TicketID        uint      `json:"ticket_id"`
	ComboIDs        []uint    `json:"combo_ids"`
	Total           float64   `json:"total"`
	PaymentMethod   string    `json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToMovieResponse(m *models.Movie) MovieResponse {
	return MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Synopsis:        m.Synopsis,
		Rating:          m.Rating,
		DurationMinutes: m.DurationMinutes,
		Cast:            m.Cast,
		Genre:           m.Genre,
		ExhibitionStart: m.ExhibitionStart,
		ExhibitionEnd:   m.ExhibitionEnd,
		CreatedAt:       m.CreatedAt,
	}
}

func ToRoomResponse(r *models.Room) RoomResponse {
	seats := r.Seats
	if seats == nil {
		seats = models.SeatMap{}
	}
	return RoomResponse{
		ID:        r.ID,
		Number:    r.Number,
		Capacity:  r.Capacity,
		Seats:     seats,
		CreatedAt: r.CreatedAt,
	}
}

func ToShowtimeResponse(s *models.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        s.ID,
		StartsAt:  s.StartsAt,
		MovieID:   s.MovieID,
		RoomID:    s.RoomID,
		CreatedAt: s.CreatedAt,
	}
}

func ToTicketResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		FullPrice:  t.FullPrice,
		HalfPrice:  t.HalfPrice,
		ShowtimeID: t.ShowtimeID,
		CreatedAt:  t.CreatedAt,
	}
}

func ToComboItemResponse(c *models.ComboItem) ComboItemResponse {
	return ComboItemResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		UnitPrice:   c.UnitPrice,
		Quantity:    c.Quantity,
		Subtotal:    c.Subtotal,
		CreatedAt:   c.CreatedAt,
	}
}

func ToOrderResponse(o *models.Order) OrderResponse {
	comboIDs := make([]uint, len(o.Combos))
	for i, combo := range o.Combos {
		comboIDs[i] = combo.ID
	}
	return OrderResponse{
		ID:              o.ID,
		OrderedAt:       o.OrderedAt,
		HalfTicketCount: o.HalfTicketCount,
		FullTicketCount: o.FullTicketCount,
		TicketID:        o.TicketID,
		ComboIDs:        comboIDs,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
	}
}
