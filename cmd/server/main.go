package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamereview/backend/internal/config"
	"gamereview/backend/internal/database"
	"gamereview/backend/internal/hub"
	"gamereview/backend/internal/logging"
	"gamereview/backend/internal/router"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title           Game Review API
// @version         1.0
// @description     Games, users and the reviews users write about games.
// @host            localhost:5555
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router.New(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// Shutdown does not cancel in-flight requests; close the review streams explicitly.
	server.RegisterOnShutdown(hub.GlobalHub.Close)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("Server is running on %s", server.Addr)
	log.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", server.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %+v", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server gracefully stopped")
}
