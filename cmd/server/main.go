package main

import (
	"context"
	"errors"
	"log"

	"thematic-analysis-backend/internal/api/handlers"
	"thematic-analysis-backend/internal/api/routes"
	"thematic-analysis-backend/internal/auth"
	"thematic-analysis-backend/internal/config"
	"thematic-analysis-backend/internal/database"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/llm"
	"thematic-analysis-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "thematic-analysis-backend/docs" // This is needed for swag
)

//	@title			Thematic Analysis Backend API
//	@version		1.0
//	@description	Backend API for collaborative qualitative coding: code assignments and their review, codebooks, project snapshots, and AI assisted theme and report generation.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTokenTTL(),
	})
	if err != nil {
		logrus.Fatal("Failed to initialize auth service:", err)
	}

	checks := make(map[string]handlers.DependencyCheck)
	generator, err := newGenerator(cfg, checks)
	if err != nil {
		logrus.Fatal("Failed to initialize generation client:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, routes.Dependencies{
		DB:           db,
		Generator:    generator,
		Auth:         authService,
		HealthChecks: checks,
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// newGenerator builds the rate limited generation client. A redis limiter store is
// registered as a readiness check.
func newGenerator(cfg *config.Config, checks map[string]handlers.DependencyCheck) (llm.Client, error) {
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		var err error
		if redisClient, err = llm.NewRedisClient(cfg.RedisURL); err != nil {
			return nil, err
		}
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	store, err := llm.NewStore(redisClient)
	if err != nil {
		return nil, err
	}

	rateLimiter, err := llm.NewRateLimiter(cfg.LLMRateLimit, store, cfg.LLMRateLimitMaxWait())
	if err != nil {
		return nil, err
	}

	prompts, err := llm.LoadPrompts(cfg.LLMPromptsFile)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewHTTPClient(llm.Config{
		APIURL:            cfg.LLMAPIURL,
		APIKey:            cfg.LLMAPIKey,
		Model:             cfg.LLMModel,
		MaxTokens:         cfg.LLMMaxTokens,
		Timeout:           cfg.LLMTimeout(),
		OAuthClientID:     cfg.LLMOAuthClientID,
		OAuthClientSecret: cfg.LLMOAuthClientSecret,
		OAuthTokenURL:     cfg.LLMOAuthTokenURL,
	}, prompts, rateLimiter)
	if errors.Is(err, apperrors.ErrLLMCredentialsNotSet) && !cfg.IsProduction() {
		logrus.Warn("No generation credentials configured, AI endpoints will answer with generation errors")
		return llm.Unavailable(err), nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
