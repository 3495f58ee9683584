package handler

import (
	"errors"
	"net/http"

	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameSummaryResponse is the listing representation of a game.
type GameSummaryResponse struct {
	Title    string  `json:"title" example:"Stardew Valley"`
	Genre    string  `json:"genre" example:"Simulation"`
	Platform string  `json:"platform" example:"PC"`
	Price    float64 `json:"price" example:"14.99"`
}

func newGameSummaryResponse(game models.Game) GameSummaryResponse {
	return GameSummaryResponse{
		Title:    game.Title,
		Genre:    game.Genre,
		Platform: game.Platform,
		Price:    game.Price,
	}
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Retrieves every game with its title, genre, platform and price.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameSummaryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	var games []models.Game
	if err := database.DB.Order("id").Find(&games).Error; err != nil {
		log.WithError(err).Error("failed to list games")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve games"})
		return
	}

	response := make([]GameSummaryResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameSummaryResponse(game))
	}

	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves the full record of a game.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": recordNotFoundMessage})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": recordNotFoundMessage})
			return
		}
		log.WithError(err).WithField("game_id", id).Error("failed to load game")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, game)
}
