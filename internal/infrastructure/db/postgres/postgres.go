// Package postgres wires the relational store: connection pool, schema
// bootstrap, and the user and product repositories.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

const pingTimeout = 5 * time.Second

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c Config) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Open creates the connection pool without requiring the server to be up.
// Connectivity is established lazily; WaitReady verifies it.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// WaitReady pings the database up to attempts times with delay between
// tries, bootstrapping the schema on the first successful ping. It returns
// the last error when every attempt fails; callers are expected to keep
// serving regardless and let store-backed requests fail at the boundary.
func WaitReady(ctx context.Context, db *sql.DB, attempts int, delay time.Duration, log zerolog.Logger) error {
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := db.PingContext(pingCtx)
		cancel()

		if err == nil {
			if err := EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("schema bootstrap: %w", err)
			}
			log.Info().Int("attempt", i).Msg("database connected and schema ready")
			return nil
		}
		lastErr = err

		log.Warn().Err(err).Int("attempt", i).Int("max_attempts", attempts).Msg("database not ready, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	log.Error().Err(lastErr).Msg("database not reachable after retries, continuing anyway")
	return lastErr
}
