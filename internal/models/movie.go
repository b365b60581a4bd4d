package models

import "time"

type Movie struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Synopsis        string    `gorm:"type:varchar(1000);not null" json:"synopsis"`
	Rating          string    `gorm:"not null" json:"rating"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Cast            string    `gorm:"not null" json:"cast"`
	Genre           string    `gorm:"not null" json:"genre"`
	ExhibitionStart time.Time `gorm:"not null" json:"exhibition_start"`
	ExhibitionEnd   time.Time `gorm:"not null" json:"exhibition_end"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
