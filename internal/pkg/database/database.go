package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"ticketing-service/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		ticket_type TEXT NOT NULL,
		standard_price BIGINT NOT NULL,
		custom_price BIGINT,
		discount_amount BIGINT NOT NULL DEFAULT 0,
		discount_reason TEXT NOT NULL DEFAULT '',
		amount_paid BIGINT NOT NULL DEFAULT 0,
		balance BIGINT NOT NULL DEFAULT 0,
		checked_in BOOLEAN NOT NULL DEFAULT FALSE,
		checked_in_at TIMESTAMPTZ,
		qr_code TEXT NOT NULL,
		version BIGINT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		amount BIGINT NOT NULL,
		date DATE NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sponsorships (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		amount BIGINT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		token TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS audit_events (
		id UUID PRIMARY KEY,
		event_type TEXT NOT NULL,
		ticket_id TEXT NOT NULL,
		payload TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate bootstraps the schema. Statements are idempotent so this is safe
// to run on every start.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// IsTransient reports whether an error looks like a dropped connection that
// is worth a single retry.
func IsTransient(err error) bool {
	return errors.Is(err, driver.ErrBadConn)
}

// Retry runs fn, retrying exactly once when the failure is a transient
// connectivity error.
func Retry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || !IsTransient(err) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}
	return fn()
}
