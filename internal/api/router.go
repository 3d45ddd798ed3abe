package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mymindapp/user-service/internal/api/handler"
	customMiddleware "github.com/mymindapp/user-service/internal/api/middleware"
	"github.com/mymindapp/user-service/internal/config"
	"github.com/mymindapp/user-service/internal/repository/mongo"
	"github.com/mymindapp/user-service/internal/repository/redis"
	"github.com/mymindapp/user-service/internal/security"
	"github.com/mymindapp/user-service/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, mongoClient *mongo.Client, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	tokenManager := security.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories
	userRepo := mongo.NewUserRepository(mongoClient)

	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)

	// Services
	authService := service.NewAuthService(userRepo, tokenManager)
	userService := service.NewUserService(userRepo)
	transcriptionService := service.NewTranscriptionService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, userService)
	transcriptionHandler := handler.NewTranscriptionHandler(transcriptionService)

	authMiddleware := customMiddleware.NewAuthMiddleware(tokenManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health checks
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(mongoClient))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Registration (public)
		r.Post("/users/register", userHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", userHandler.Profile)
				r.Get("/name", userHandler.Name)
				r.Get("/email", userHandler.Email)
				r.Get("/notifications", userHandler.Notifications)
				r.Get("/privacy", userHandler.Privacy)
				r.Get("/profile-pic", userHandler.ProfilePic)

				r.Patch("/update-name", userHandler.UpdateName)
				r.Patch("/update-email", userHandler.UpdateEmail)
				r.Patch("/update-notifications", userHandler.UpdateNotifications)
				r.Patch("/profile-pic", userHandler.UpdateProfilePic)
				r.Patch("/privacy", userHandler.TogglePrivacy)

				r.Delete("/delete", userHandler.Delete)
			})

			r.Route("/transcriptions", func(r chi.Router) {
				r.Get("/", transcriptionHandler.List)
				r.Get("/by-emotion/{emotion}", transcriptionHandler.ByEmotion)
				r.Get("/by-sentiment/{sentiment}", transcriptionHandler.BySentiment)
				r.Get("/by-topic/{topic}", transcriptionHandler.ByTopic)
				r.Get("/by-date/{date}", transcriptionHandler.ByDate)
				r.Get("/by-hour", transcriptionHandler.ByHour)
				r.Get("/filter", transcriptionHandler.Filter)
				r.Get("/{transcriptionID}", transcriptionHandler.Get)

				r.Post("/add-transcription", transcriptionHandler.Add)
				r.Delete("/delete-transcription/{transcriptionID}", transcriptionHandler.Delete)
				r.Delete("/delete-all-transcriptions", transcriptionHandler.DeleteAll)
			})
		})
	})

	return r
}
