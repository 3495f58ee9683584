package router

import (
	"gamereview/backend/internal/handler"
	"gamereview/backend/internal/logging"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamereview/backend/docs" // registers the generated OpenAPI document

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the engine with middleware and every API route.
func New() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handler.Index)
	router.GET("/ping", handler.Ping)

	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", handler.GetGames)
		gameRoutes.GET("/:id", handler.GetGameByID)
	}

	reviewRoutes := router.Group("/reviews")
	{
		reviewRoutes.GET("", handler.GetReviews)
		reviewRoutes.POST("", handler.CreateReview)
		reviewRoutes.GET("/events", handler.StreamReviewEvents) // Must be before /:id
		reviewRoutes.GET("/:id", handler.GetReviewByID)
		reviewRoutes.PATCH("/:id", handler.UpdateReview)
		reviewRoutes.DELETE("/:id", handler.DeleteReview)
	}

	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", handler.GetUsers)
	}

	return router
}
