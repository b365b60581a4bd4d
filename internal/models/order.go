package models

import "time"

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderedAt       time.Time   `gorm:"not null" json:"ordered_at"`
	HalfTicketCount int         `gorm:"not null" json:"half_ticket_count"`
	FullTicketCount int         `gorm:"not null" json:"full_ticket_count"`
	TicketID        uint        `gorm:"not null;index" json:"ticket_id"`
	Combos          []ComboItem `gorm:"many2many:order_combo_items" json:"combos,omitempty"`
	Total           float64     `gorm:"not null" json:"total"`
	PaymentMethod   string      `gorm:"not null" json:"payment_method"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
