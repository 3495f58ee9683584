package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const recordNotFoundMessage = "This record does not exist in our database. Please try again."

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"This record does not exist in our database. Please try again."`
}

// Index godoc
// @Summary      API banner
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Index(c *gin.Context) {
	c.String(http.StatusOK, "Index for Game/Review/User API")
}

// Ping godoc
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// parseID reads the ":id" path parameter. Non-numeric ids match no record.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
