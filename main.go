package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"talentflow/config"
	"talentflow/internal/app"
	"talentflow/internal/database"
	"talentflow/internal/seed"
	"talentflow/internal/server"

	"github.com/go-playground/validator"
	log "github.com/sirupsen/logrus"
)

// @title           TalentFlow API
// @version         1.0
// @description     Hiring-pipeline backend: jobs, candidates, applications, assessments, and assignments over an embedded store.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// --- Initialize Redis Client (optional stats cache) ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// --- Seed the store when empty ---
	seeder := seed.New(db, cfg.Seed)
	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Application gracefully stopped.")
}
