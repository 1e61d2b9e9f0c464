// internal/router/router.go
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/handler"
	"github.com/dangerclosesec/traininghub/internal/middleware"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Logger         *slog.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration

	TokenManager     *auth.TokenManager
	UserService      *service.UserService
	SurveyService    *service.SurveyService
	TrainingService  *service.TrainingService
	AnalyticsService *service.AnalyticsService
	AuditService     *service.AccessAuditService
}

// New builds the API router.
func New(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	authHandler := handler.NewAuthHandler(deps.UserService)
	userHandler := handler.NewUserHandler(deps.UserService)
	surveyHandler := handler.NewSurveyHandler(deps.SurveyService)
	trainingHandler := handler.NewTrainingHandler(deps.TrainingService)
	analyticsHandler := handler.NewAnalyticsHandler(deps.AnalyticsService)
	auditLogHandler := handler.NewAuditLogHandler(deps.AuditService)

	requireManager := middleware.RequireRole(model.RoleManager, deps.AuditService)
	requireAdmin := middleware.RequireRole(model.RoleAdmin, deps.AuditService)
	// Content negotiation runs after the auth and role gates so they answer first.
	jsonBody := middleware.RequireJSON

	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.AuditRequest)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(jsonBody).Post("/auth/login", authHandler.LoginHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.TokenManager))

			r.Route("/users", func(r chi.Router) {
				r.With(requireAdmin).Get("/", userHandler.ListUsers)
				r.Get("/profile", userHandler.GetProfile)
				r.With(jsonBody).Put("/profile", userHandler.UpdateProfile)
			})

			r.Route("/surveys", func(r chi.Router) {
				r.Get("/", surveyHandler.ListSurveys)
				r.With(jsonBody).Post("/", surveyHandler.CreateSurvey)
				r.Get("/{id}", surveyHandler.GetSurvey)
				r.With(requireManager, jsonBody).Put("/{id}/status", surveyHandler.UpdateSurveyStatus)
				r.With(jsonBody).Post("/{id}/responses", surveyHandler.SubmitResponse)
				r.With(requireManager).Get("/{id}/responses", surveyHandler.ListResponses)
			})

			r.Route("/training", func(r chi.Router) {
				r.Get("/applications", trainingHandler.ListApplications)
				r.With(jsonBody).Post("/applications", trainingHandler.CreateApplication)
				r.Get("/applications/{id}", trainingHandler.GetApplication)
				r.Delete("/applications/{id}", trainingHandler.DeleteApplication)
				r.With(requireManager, jsonBody).Put("/applications/{id}/status", trainingHandler.UpdateApplicationStatus)
				r.With(requireManager).Get("/statistics", trainingHandler.Statistics)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", analyticsHandler.Dashboard)
				r.Get("/training-needs", analyticsHandler.TrainingNeeds)
			})

			r.With(requireAdmin).Get("/audit-logs", auditLogHandler.GetAuditLogs)
		})
	})

	return r
}
