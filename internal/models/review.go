package models

import "time"

// Review is a user's score and comment for a game.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	GameID    uint      `gorm:"not null;index" json:"game_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Game *Game `gorm:"foreignKey:GameID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// ReviewUpdatableFields lists the columns a client may change on an existing review.
var ReviewUpdatableFields = map[string]bool{
	"score":   true,
	"comment": true,
}
