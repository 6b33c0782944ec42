package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	JWTTokenTTLMin int    `mapstructure:"JWT_TOKEN_TTL_MIN"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Generation service configuration
	LLMAPIURL            string `mapstructure:"LLM_API_URL"`
	LLMAPIKey            string `mapstructure:"LLM_API_KEY"`
	LLMModel             string `mapstructure:"LLM_MODEL"`
	LLMMaxTokens         int    `mapstructure:"LLM_MAX_TOKENS"`
	LLMTimeoutSec        int    `mapstructure:"LLM_TIMEOUT_SEC"`
	LLMOAuthClientID     string `mapstructure:"LLM_OAUTH_CLIENT_ID"`
	LLMOAuthClientSecret string `mapstructure:"LLM_OAUTH_CLIENT_SECRET"`
	LLMOAuthTokenURL     string `mapstructure:"LLM_OAUTH_TOKEN_URL"`
	LLMRateLimit         string `mapstructure:"LLM_RATE_LIMIT"`
	LLMRateLimitWaitSec  int    `mapstructure:"LLM_RATE_LIMIT_MAX_WAIT_SEC"`
	LLMPromptsFile       string `mapstructure:"LLM_PROMPTS_FILE"`

	// Shared rate limiter store, in-memory when empty
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "thematic_analysis")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TOKEN_TTL_MIN", 60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Generation service defaults
	viper.SetDefault("LLM_API_URL", "https://api.anthropic.com/v1/messages")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "")
	viper.SetDefault("LLM_MAX_TOKENS", 4096)
	viper.SetDefault("LLM_TIMEOUT_SEC", 120)
	viper.SetDefault("LLM_OAUTH_CLIENT_ID", "")
	viper.SetDefault("LLM_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("LLM_OAUTH_TOKEN_URL", "")
	viper.SetDefault("LLM_RATE_LIMIT", "15-M")
	viper.SetDefault("LLM_RATE_LIMIT_MAX_WAIT_SEC", 30)
	viper.SetDefault("LLM_PROMPTS_FILE", "config/prompts.yaml")

	viper.SetDefault("REDIS_URL", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.LLMAPIKey == "" && config.LLMOAuthClientID == "" {
			return fmt.Errorf("LLM_API_KEY or LLM_OAUTH_CLIENT_ID must be set in production")
		}
		if config.LLMModel == "" {
			return fmt.Errorf("LLM_MODEL must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.LLMOAuthClientID != "" && config.LLMOAuthTokenURL == "" {
		return fmt.Errorf("LLM_OAUTH_TOKEN_URL is required with LLM_OAUTH_CLIENT_ID")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LLMTimeout returns the timeout of one generation call
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSec) * time.Second
}

// LLMRateLimitMaxWait returns how long a generation call may wait for the rate limiter
func (c *Config) LLMRateLimitMaxWait() time.Duration {
	return time.Duration(c.LLMRateLimitWaitSec) * time.Second
}

// JWTTokenTTL returns the lifetime of issued access tokens
func (c *Config) JWTTokenTTL() time.Duration {
	return time.Duration(c.JWTTokenTTLMin) * time.Minute
}
