package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "thematic-analysis-backend"

// AuthConfig holds the settings used to sign and verify access tokens
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token TTL must not be negative")
	}
	return nil
}

func (c *AuthConfig) issuer() string {
	if c.Issuer == "" {
		return defaultIssuer
	}
	return c.Issuer
}

func (c *AuthConfig) tokenTTL() time.Duration {
	if c.TokenTTL == 0 {
		return time.Hour
	}
	return c.TokenTTL
}
