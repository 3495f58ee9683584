package models

import "time"

// Game represents a game that can be reviewed.
type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Genre     string    `gorm:"size:100" json:"genre"`
	Platform  string    `gorm:"size:100" json:"platform"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
