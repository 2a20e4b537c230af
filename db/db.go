package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"storefront-core/config"
)

// DB holds the database connection. It stays nil in memory mode.
var DB *sql.DB

// InitDB opens and pings the Postgres connection described by cfg
func InitDB(cfg config.DatabaseConfig) error {
	if !cfg.HasDatabase() {
		return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = conn
	log.Printf("✓ Database connection established successfully")
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id               BIGSERIAL PRIMARY KEY,
	name             TEXT        NOT NULL,
	description      TEXT        NOT NULL DEFAULT '',
	price            BIGINT      NOT NULL DEFAULT 0,
	stock_count      INTEGER,
	available_colors JSONB       NOT NULL DEFAULT '[]'::jsonb,
	available_sizes  JSONB       NOT NULL DEFAULT '[]'::jsonb,
	is_active        BOOLEAN     NOT NULL DEFAULT true,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS orders (
	id             UUID PRIMARY KEY,
	product_id     BIGINT      NOT NULL REFERENCES products(id),
	status         TEXT        NOT NULL DEFAULT 'pending',
	order_type     TEXT        NOT NULL DEFAULT 'retail',
	customer_name  TEXT,
	customer_phone TEXT,
	notes          TEXT,
	total_quantity INTEGER     NOT NULL DEFAULT 0,
	total_amount   BIGINT      NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS order_lines (
	id         BIGSERIAL PRIMARY KEY,
	order_id   UUID    NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	color      TEXT    NOT NULL,
	size       TEXT    NOT NULL,
	qty        INTEGER NOT NULL CHECK (qty > 0),
	unit_price BIGINT  NOT NULL,
	UNIQUE (order_id, color, size)
);

CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC);
`

// EnsureSchema creates the tables the repositories rely on
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if _, err := DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Printf("✓ Database schema ready")
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
