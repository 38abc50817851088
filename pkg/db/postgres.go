package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS prescriptions (
	id               SERIAL PRIMARY KEY,
	name             TEXT NOT NULL UNIQUE,
	price_per_refill DOUBLE PRECISION NOT NULL,
	refills          INTEGER NOT NULL,
	subscription     BOOLEAN NOT NULL DEFAULT FALSE,
	coupon           BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quotes (
	id               UUID PRIMARY KEY,
	prescription     TEXT NOT NULL,
	price_per_refill DOUBLE PRECISION NOT NULL,
	refills          INTEGER NOT NULL,
	subscription     BOOLEAN NOT NULL,
	coupon           BOOLEAN NOT NULL,
	base_cost        DOUBLE PRECISION NOT NULL,
	after_discount   DOUBLE PRECISION NOT NULL,
	total            DOUBLE PRECISION NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL
);
`

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func NewPostgresConnection(cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the prescriptions and quotes tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
