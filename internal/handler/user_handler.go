package handler

import (
	"net/http"

	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetUsers godoc
// @Summary      List users
// @Description  Retrieves every user.
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func GetUsers(c *gin.Context) {
	users := []models.User{}
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		log.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
