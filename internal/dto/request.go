package dto

import "time"

// Request bodies are full representations; PUT replaces the whole record
// with the same shape used on create.

type MovieRequest struct {
	Title           string    `json:"title" validate:"required"`
	Synopsis        string    `json:"synopsis" validate:"required"`
	Rating          string    `json:"rating" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Cast            string    `json:"cast" validate:"required"`
	Genre           string    `json:"genre" validate:"required"`
	ExhibitionStart time.Time `json:"exhibition_start" validate:"required"`
	ExhibitionEnd   time.Time `json:"exhibition_end" validate:"required,gtfield=ExhibitionStart"`
}

type RoomRequest struct {
	Number   int     `json:"number" validate:"required,gt=0"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
	Seats    [][]int `json:"seats"`
}

type ShowtimeRequest struct {
	StartsAt time.Time `json:"starts_at" validate:"required"`
	MovieID  uint      `json:"movie_id" validate:"required"`
	RoomID   uint      `json:"room_id" validate:"required"`
}

type TicketRequest struct {
	FullPrice  float64 `json:"full_price" validate:"required,gt=0"`
	HalfPrice  float64 `json:"half_price" validate:"required,gt=0"`
	ShowtimeID uint    `json:"showtime_id" validate:"required"`
}

type ComboItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	UnitPrice   float64 `json:"unit_price" validate:"required,gte=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Subtotal    float64 `json:"subtotal" validate:"gte=0"`
}

type OrderRequest struct {
	OrderedAt       time.Time `json:"ordered_at" validate:"required"`
	HalfTicketCount int       `json:"half_ticket_count" validate:"gte=0"`
	FullTicketCount int       `json:"full_ticket_count" validate:"gte=0"`
	TicketID        uint      `json:"ticket_id" validate:"required"`
	ComboIDs        []uint    `json:"combo_ids"`
	Total           float64   `json:"total" validate:"gte=0"`
	PaymentMethod   string    `json:"payment_method" validate:"required"`
}
