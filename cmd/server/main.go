package main

import (
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/takedajouji/FitU/internal/api"
	"github.com/takedajouji/FitU/internal/config"
	"github.com/takedajouji/FitU/internal/database"
	"github.com/takedajouji/FitU/internal/handler"
	"github.com/takedajouji/FitU/internal/jobs"
	"github.com/takedajouji/FitU/internal/logger"
	"github.com/takedajouji/FitU/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Cloudinary est optionnel : sans configuration, l'upload d'avatar
	// répond 503 mais le reste de l'API fonctionne
	if svc, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	} else {
		handler.SetCloudinary(svc)
	}

	// Maintenance quotidienne (purge des sessions expirées)
	scheduler := jobs.StartScheduler()
	defer scheduler.Stop()

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"*"},
	})
	h := c.Handler(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
