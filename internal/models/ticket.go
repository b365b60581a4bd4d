package models

import "time"

type Ticket struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullPrice  float64   `gorm:"not null" json:"full_price"`
	HalfPrice  float64   `gorm:"not null" json:"half_price"`
	ShowtimeID uint      `gorm:"not null;index" json:"showtime_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
