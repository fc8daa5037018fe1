package main

import (
	"log"

	"github.com/tricyvic/alx-travel-app-0x00/config"
	"github.com/tricyvic/alx-travel-app-0x00/routes"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

// @title        ALX Travel App API
// @version      1.0
// @description  Listings, bookings and reviews for a travel booking platform.
// @BasePath     /api/v1
func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.Options{
		Level: logger.ParseLevel(cfg.LogLevel),
		File:  cfg.LogFile,
		JSON:  cfg.LogJSON,
	})
	defer appLogger.Close()

	router, db, err := config.InitApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	routes.SetupRoutes(router, routes.Deps{
		DB:         db,
		Logger:     appLogger,
		BcryptCost: cfg.BcryptCost,
	})

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
