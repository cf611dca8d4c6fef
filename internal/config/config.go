// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// InsecureDevSecret is the token-signing fallback used when JWT_SECRET is
// unset. It must never be accepted silently; main logs a loud warning.
const InsecureDevSecret = "insecure-dev-secret"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	TokenTTL   time.Duration
	AdminEmail string
	AdminPass  string
	BcryptCost int
	CORSOrigin string
	Addr       string
	WebDir     string

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// InsecureSecret reports whether the signing secret is the development fallback.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == InsecureDevSecret
}

// ProvisioningEnabled reports whether admin bootstrap credentials are configured.
func (c *Config) ProvisioningEnabled() bool {
	return c.AdminEmail != "" && c.AdminPass != ""
}

// SSOEnabled reports whether the optional OIDC login flow is configured.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// Load reads configuration from environment variables and returns a validated
// Config. MONGODB_URI is the only required variable; everything else has a
// default. Optional variables: MONGODB_DB (portfolio), JWT_SECRET
// (insecure dev fallback), TOKEN_TTL (24h), ADMIN_EMAIL/ADMIN_PASSWORD
// (provisioning skipped when unset), BCRYPT_COST (12), CORS_ORIGIN (*),
// ADDR (:8080), WEB_DIR (web), OIDC_* (SSO disabled when unset).
func Load() (*Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	ttl := 24 * time.Hour
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_TTL has invalid duration %q: %w", v, err)
		}
		ttl = parsed
	}

	cost := 12
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < bcrypt.MinCost || parsed > bcrypt.MaxCost {
			return nil, fmt.Errorf("BCRYPT_COST has invalid value %q", v)
		}
		cost = parsed
	}

	return &Config{
		MongoURI:   uri,
		MongoDB:    env("MONGODB_DB", "portfolio"),
		JWTSecret:  env("JWT_SECRET", InsecureDevSecret),
		TokenTTL:   ttl,
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		AdminPass:  os.Getenv("ADMIN_PASSWORD"),
		BcryptCost: cost,
		CORSOrigin: env("CORS_ORIGIN", "*"),
		Addr:       env("ADDR", ":8080"),
		WebDir:     env("WEB_DIR", "web"),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
