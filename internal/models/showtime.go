package models

import "time"

// Showtime references its movie and room by id only; handlers and services
// resolve them on demand instead of loading an object graph.
type Showtime struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	MovieID   uint      `gorm:"not null;index" json:"movie_id"`
	RoomID    uint      `gorm:"not null;index" json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
