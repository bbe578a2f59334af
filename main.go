// main.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/YuliiaIvakhnenko/flower-shop/config"
	"github.com/YuliiaIvakhnenko/flower-shop/controllers"
	"github.com/YuliiaIvakhnenko/flower-shop/metrics"
	"github.com/YuliiaIvakhnenko/flower-shop/middleware"
	"github.com/YuliiaIvakhnenko/flower-shop/routes"
	"github.com/YuliiaIvakhnenko/flower-shop/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, proceeding with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := config.NewLogger(cfg.Logger)

	// Initialize OpenTelemetry metrics (no-op when unconfigured)
	ctx := context.Background()
	appMetrics, meterProvider, err := metrics.Init(ctx, cfg.Metrics)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}
	if meterProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("error shutting down meter provider")
			}
		}()
	}

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.Email)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	// Initialize controllers
	shopController := controllers.NewShopController(db, logger)
	flowerController := controllers.NewFlowerController(db, logger)
	bouquetController := controllers.NewBouquetController(db, logger)
	orderController := controllers.NewOrderController(db, emailService, appMetrics, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	if appMetrics != nil {
		router.Use(middleware.Metrics(appMetrics))
	}

	// Register routes
	routes.RegisterRoutes(router, shopController, flowerController, bouquetController, orderController)

	// Start the server
	logger.Info().Int("port", cfg.Server.Port).Msg("server is running")
	if err := http.ListenAndServe(cfg.Server.Address(), router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
