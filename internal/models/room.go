package models

import "time"

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"number"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Seats     SeatMap   `gorm:"type:text" json:"seats"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
