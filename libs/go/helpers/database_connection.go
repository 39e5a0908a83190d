package helpers

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/logger"
)

// SecretSource resolves secrets by ARN env var with a plain env fallback.
// The Secrets Manager client satisfies it.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar, fallbackEnvVar string, out interface{}) error
}

// Pinger checks connectivity. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolSettings tunes the pgx connection pool
type PoolSettings struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	// ConnectTimeout bounds the startup ping retries.
	ConnectTimeout time.Duration
}

// DefaultPoolSettings returns the pool sizing used by the API server.
func DefaultPoolSettings() PoolSettings {
	return PoolSettings{
		MaxConns:        20,
		MinConns:        5,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 15 * time.Minute,
		ConnectTimeout:  30 * time.Second,
	}
}

// LambdaPoolSettings keeps a short-lived function from holding idle connections.
func LambdaPoolSettings() PoolSettings {
	return PoolSettings{
		MaxConns:        4,
		MinConns:        0,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: time.Minute,
		ConnectTimeout:  20 * time.Second,
	}
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveDatabaseURL builds the DSN for stage. Deployed stages combine
// DB_HOST, DB_NAME and DB_SSLMODE with the RDS credentials secret; local runs
// read DATABASE_URL (or the secret named by DATABASE_URL_ARN).
func ResolveDatabaseURL(ctx context.Context, secrets SecretSource, stage string) (string, error) {
	if stage != StageProd && stage != StageDev {
		dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("failed to get DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	if dbEndpoint == "" || dbName == "" {
		return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "require"
	}

	var secretData rdsSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData); err != nil {
		return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
	}
	if secretData.Username == "" || secretData.Password == "" {
		return "", fmt.Errorf("username or password not found in RDS secret data")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secretData.Username),
		url.QueryEscape(secretData.Password),
		dbEndpoint, dbName, dbSSLMode), nil
}

// NewPool parses dsn, applies settings and waits until the database answers.
func NewPool(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	poolConfig.MaxConns = settings.MaxConns
	poolConfig.MinConns = settings.MinConns
	poolConfig.MaxConnLifetime = settings.MaxConnLifetime
	poolConfig.MaxConnIdleTime = settings.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := PingWithRetry(ctx, pool, newPingBackOff(settings.ConnectTimeout)); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Log.Info("Database connection pool ready",
		zap.String("host", poolConfig.ConnConfig.Host),
		zap.String("database", poolConfig.ConnConfig.Database),
		zap.Int32("max_conns", settings.MaxConns))

	return pool, nil
}

func newPingBackOff(maxElapsed time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxElapsed
	return b
}

// PingWithRetry pings until it succeeds, the policy gives up or ctx ends.
func PingWithRetry(ctx context.Context, pinger Pinger, policy backoff.BackOff) error {
	attempt := 0
	operation := func() error {
		attempt++
		return pinger.Ping(ctx)
	}
	notify := func(err error, wait time.Duration) {
		logger.Log.Warn("Database not reachable yet, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}
	return nil
}
