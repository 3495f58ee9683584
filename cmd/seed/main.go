package main

import (
	"flag"

	"gamereview/backend/internal/config"
	"gamereview/backend/internal/database"
	"gamereview/backend/internal/logging"
	"gamereview/backend/internal/seed"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := flag.String("dsn", "", "Database connection string (defaults to DATABASE_URL)")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	if *dsn == "" {
		*dsn = cfg.DatabaseURL
	}

	if err := database.Connect(*dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(database.DB, bcrypt.DefaultCost); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Info("Database seeded successfully.")
}
