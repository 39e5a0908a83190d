package server

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sails-app/sails-api/libs/go/cache"
	"github.com/sails-app/sails-api/libs/go/client/auth"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/middleware"
)

// Config is everything the API needs at startup
type Config struct {
	Stage       string
	DatabaseURL string
	Auth        auth.AuthConfig
	RedisURL    string
	CacheTTL    time.Duration
	RateLimit   middleware.RateLimitConfig
	Port        string
}

// LoadConfig resolves the API configuration for stage from the environment
// and Secrets Manager.
func LoadConfig(ctx context.Context, secrets helpers.SecretSource, stage string) (*Config, error) {
	dsn, err := helpers.ResolveDatabaseURL(ctx, secrets, stage)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Stage:       stage,
		DatabaseURL: dsn,
		Auth: auth.AuthConfig{
			JWKSURL:  os.Getenv("SESSION_JWKS_ENDPOINT"),
			Issuer:   os.Getenv("SESSION_ISSUER"),
			Audience: os.Getenv("SESSION_AUDIENCE"),
		},
		CacheTTL:  cache.DefaultReportTTL,
		RateLimit: middleware.DefaultRateLimitConfig(),
		Port:      envOrDefault("PORT", "8000"),
	}

	// The secret is optional when a JWKS endpoint is configured.
	if secret, err := secrets.GetSecretString(ctx, "SESSION_SECRET_ARN", "SESSION_SECRET"); err == nil {
		cfg.Auth.HMACSecret = []byte(secret)
	}
	if cfg.Auth.JWKSURL == "" && len(cfg.Auth.HMACSecret) == 0 {
		return nil, fmt.Errorf("session verification requires SESSION_JWKS_ENDPOINT or SESSION_SECRET")
	}

	if redisURL, err := secrets.GetSecretString(ctx, "REDIS_URL_ARN", "REDIS_URL"); err == nil {
		cfg.RedisURL = strings.TrimSpace(redisURL)
	}

	if raw := os.Getenv("NEXUS_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid NEXUS_CACHE_TTL %q", raw)
		}
		cfg.CacheTTL = ttl
	}

	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", raw)
		}
		cfg.RateLimit.RequestsPerSecond = rps
	}
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", raw)
		}
		cfg.RateLimit.Burst = burst
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitEnvList reads a comma separated env var, trimming each entry
func splitEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
