// Package seed populates the store with sample games, users and reviews.
package seed

import (
	"fmt"

	"gamereview/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is assigned to every seeded user.
const DefaultPassword = "password123"

var games = []models.Game{
	{Title: "Stardew Valley", Genre: "Simulation", Platform: "PC", Price: 14.99},
	{Title: "Hollow Knight", Genre: "Metroidvania", Platform: "Switch", Price: 15.00},
	{Title: "Celeste", Genre: "Platformer", Platform: "PC", Price: 19.99},
	{Title: "Hades", Genre: "Roguelike", Platform: "PS5", Price: 24.99},
	{Title: "The Witcher 3", Genre: "RPG", Platform: "Xbox", Price: 39.99},
}

var userNames = []string{"Ada", "Grace", "Linus", "Ken"}

var comments = []string{
	"Loved every minute of it.",
	"Solid, but the ending dragged.",
	"Not my kind of game.",
	"Would play again.",
	"Great soundtrack, weak story.",
}

// Run clears games, users and reviews, then inserts the sample data in one transaction.
// cost is the bcrypt cost used for user passwords.
func Run(db *gorm.DB, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Reviews first: they reference games and users.
		for _, model := range []interface{}{&models.Review{}, &models.Game{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		seededGames := make([]models.Game, len(games))
		copy(seededGames, games)
		if err := tx.Create(&seededGames).Error; err != nil {
			return fmt.Errorf("create games: %w", err)
		}

		users := make([]models.User, 0, len(userNames))
		for _, name := range userNames {
			users = append(users, models.User{Name: name, PasswordHash: string(hash)})
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("create users: %w", err)
		}

		var reviews []models.Review
		for i, game := range seededGames {
			for j, user := range users {
				if (i+j)%2 != 0 {
					continue
				}
				reviews = append(reviews, models.Review{
					Score:   (i+j)%10 + 1,
					Comment: comments[(i+j)%len(comments)],
					GameID:  game.ID,
					UserID:  user.ID,
				})
			}
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("create reviews: %w", err)
		}

		return nil
	})
}
