// Package main is the entry point for the reward flight availability service.
//
//	@title						Reward Flight Availability API
//	@version					1.0.0
//	@description				A read-only query service over a snapshot of scraped reward flight availability, with per-cabin award offers and points pricing.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/rewardo/reward-flight-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/rewardo/reward-flight-search/docs"

	// Application layers
	rewardhttp "github.com/rewardo/reward-flight-search/internal/adapter/http"
	"github.com/rewardo/reward-flight-search/internal/adapter/http/middleware"
	"github.com/rewardo/reward-flight-search/internal/config"
	"github.com/rewardo/reward-flight-search/internal/infrastructure/database"
	"github.com/rewardo/reward-flight-search/internal/repository/postgres"
	"github.com/rewardo/reward-flight-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("carrier_code", cfg.Search.CarrierCode).
		Msg("Configuration loaded")

	// Connect to the snapshot database
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	pool, err := database.New(startupCtx, cfg.Database, log.Logger)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Wire repository, use case, and handler
	repo := postgres.NewRewardFlightRepository(pool, log.Logger)
	searchUseCase := usecase.NewRewardSearchUseCase(repo, &usecase.Config{
		CarrierCode:  cfg.Search.CarrierCode,
		QueryTimeout: cfg.Search.QueryTimeout,
	}, log.Logger)
	handler := rewardhttp.NewRewardFlightHandler(searchUseCase)

	rewardhttp.RegisterRoutes(e, handler, cfg.Search.CarrierCode)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
