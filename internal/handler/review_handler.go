package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"gamereview/backend/internal/database"
	"gamereview/backend/internal/hub"
	"gamereview/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// region --- DTOs ---

// ReviewInput defines the fields accepted when submitting a review.
type ReviewInput struct {
	Score   int    `form:"score" json:"score" example:"5"`
	Comment string `form:"comment" json:"comment" example:"great"`
	GameID  uint   `form:"game_id" json:"game_id" binding:"required" example:"1"`
	UserID  uint   `form:"user_id" json:"user_id" binding:"required" example:"1"`
}

// DeleteResponse confirms a removed review.
type DeleteResponse struct {
	DeleteSuccessful bool   `json:"delete_successful" example:"true"`
	Message          string `json:"message" example:"Review deleted."`
}

// endregion

// GetReviews godoc
// @Summary      List reviews
// @Description  Retrieves every review.
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   models.Review
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [get]
func GetReviews(c *gin.Context) {
	reviews := []models.Review{}
	if err := database.DB.Order("id").Find(&reviews).Error; err != nil {
		log.WithError(err).Error("failed to list reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Submit a review
// @Description  Creates a review of an existing game by an existing user.
// @Tags         reviews
// @Accept       x-www-form-urlencoded
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        score    formData  int     false  "Score"
// @Param        comment  formData  string  false  "Comment"
// @Param        game_id  formData  int     true   "Game ID"
// @Param        user_id  formData  int     true   "User ID"
// @Success      201  {object}  models.Review
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if msg, err := checkReferences(input.GameID, input.UserID); err != nil {
		log.WithError(err).Error("failed to check review references")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
		return
	} else if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	review := models.Review{
		Score:   input.Score,
		Comment: input.Comment,
		GameID:  input.GameID,
		UserID:  input.UserID,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		// The game or user can disappear between the check above and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Game or user does not exist."})
			return
		}
		log.WithError(err).Error("failed to create review")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.ReviewCreated, Payload: review})
	c.JSON(http.StatusCreated, review)
}

// checkReferences returns a client-facing message when the game or user does not exist.
func checkReferences(gameID, userID uint) (string, error) {
	var count int64
	if err := database.DB.Model(&models.Game{}).Where("id = ?", gameID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return fmt.Sprintf("Game %d does not exist.", gameID), nil
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return fmt.Sprintf("User %d does not exist.", userID), nil
	}

	return "", nil
}

// findReview loads the review named by the ":id" parameter, replying 404 or 500 itself when it can't.
func findReview(c *gin.Context) (*models.Review, bool) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": recordNotFoundMessage})
		return nil, false
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": recordNotFoundMessage})
			return nil, false
		}
		log.WithError(err).WithField("review_id", id).Error("failed to load review")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve review"})
		return nil, false
	}

	return &review, true
}

// GetReviewByID godoc
// @Summary      Get a single review by ID
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  models.Review
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [get]
func GetReviewByID(c *gin.Context) {
	review, ok := findReview(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, review)
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Changes the submitted fields of a review. Only score and comment may be updated.
// @Tags         reviews
// @Accept       x-www-form-urlencoded
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        id       path      int     true   "Review ID"
// @Param        score    formData  int     false  "Score"
// @Param        comment  formData  string  false  "Comment"
// @Success      200  {object}  models.Review
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/{id} [patch]
func UpdateReview(c *gin.Context) {
	review, ok := findReview(c)
	if !ok {
		return
	}

	fields, err := readFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updates, err := reviewUpdates(fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, review)
		return
	}

	if err := database.DB.Model(review).Updates(updates).Error; err != nil {
		log.WithError(err).WithField("review_id", review.ID).Error("failed to update review")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update review"})
		return
	}

	if err := database.DB.First(review, review.ID).Error; err != nil {
		log.WithError(err).WithField("review_id", review.ID).Error("failed to reload review")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve review"})
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.ReviewUpdated, Payload: review})
	c.JSON(http.StatusOK, review)
}

// readFields collects the submitted field=value pairs from a urlencoded, multipart or JSON body.
func readFields(c *gin.Context) (map[string]string, error) {
	fields := make(map[string]string)

	if c.ContentType() == binding.MIMEJSON {
		raw := make(map[string]interface{})
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		for name, value := range raw {
			switch v := value.(type) {
			case string:
				fields[name] = v
			case nil:
				fields[name] = ""
			default:
				fields[name] = fmt.Sprint(v)
			}
		}
		return fields, nil
	}

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("invalid multipart body: %w", err)
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	for name := range c.Request.PostForm {
		fields[name] = c.Request.PostForm.Get(name)
	}
	return fields, nil
}

// reviewUpdates converts submitted fields to column updates, rejecting anything outside the allow-list.
func reviewUpdates(fields map[string]string) (map[string]interface{}, error) {
	var rejected []string
	for name := range fields {
		if !models.ReviewUpdatableFields[name] {
			rejected = append(rejected, name)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return nil, fmt.Errorf("Field(s) %s cannot be updated.", strings.Join(rejected, ", "))
	}

	updates := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		switch name {
		case "score":
			score, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("Invalid score %q.", value)
			}
			updates["score"] = score
		case "comment":
			updates["comment"] = value
		}
	}
	return updates, nil
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  DeleteResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	review, ok := findReview(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(review).Error; err != nil {
		log.WithError(err).WithField("review_id", review.ID).Error("failed to delete review")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete review"})
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.ReviewDeleted, Payload: gin.H{"id": review.ID}})
	c.JSON(http.StatusOK, DeleteResponse{
		DeleteSuccessful: true,
		Message:          "Review deleted.",
	})
}

// StreamReviewEvents godoc
// @Summary      Stream review changes
// @Description  Sends review.created, review.updated and review.deleted events as Server-Sent Events.
// @Tags         reviews
// @Produce      text/event-stream
// @Success      200  {string}  string
// @Router       /reviews/events [get]
func StreamReviewEvents(c *gin.Context) {
	client := hub.GlobalHub.Subscribe(16)
	defer hub.GlobalHub.Unsubscribe(client)

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("review", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
