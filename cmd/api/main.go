// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/config"
	"github.com/dangerclosesec/traininghub/internal/database"
	"github.com/dangerclosesec/traininghub/internal/email"
	"github.com/dangerclosesec/traininghub/internal/email/mailer"
	"github.com/dangerclosesec/traininghub/internal/logging"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/router"
	"github.com/dangerclosesec/traininghub/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	// A missing .env is normal outside local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Initialize structured logger
	logger := logging.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("closing database", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("database migrated")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	statusMailer := mailer.NewApplicationStatusMailer(emailService, cfg.BaseURL)

	// Initialize services
	auditService := service.NewAccessAuditService(repos.AuditLogs)
	userService := service.NewUserService(repos.Users, passwordHasher, tokenManager)
	surveyService := service.NewSurveyService(repos.Surveys, repos.Responses)
	trainingService := service.NewTrainingService(repos.Applications, statusMailer, auditService)
	analyticsService := service.NewAnalyticsService(repos.Analytics)

	// Create router
	handler := router.New(router.Deps{
		Logger:           logger,
		CORSOrigins:      cfg.CORSOrigins,
		RequestTimeout:   30 * time.Second,
		TokenManager:     tokenManager,
		UserService:      userService,
		SurveyService:    surveyService,
		TrainingService:  trainingService,
		AnalyticsService: analyticsService,
		AuditService:     auditService,
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}
