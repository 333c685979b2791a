package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements crea las tres tablas del sistema. Todas las sentencias son
// idempotentes (IF NOT EXISTS), así que EnsureSchema puede ejecutarse en cada
// arranque sin efecto sobre una base ya migrada.
//
// products.quantity lleva CHECK (quantity >= 0) como red de seguridad del
// invariante del libro de movimientos; el ON DELETE CASCADE de
// stock_movements implementa la propiedad "el producto es dueño de su
// historial" y el ON DELETE SET NULL conserva los movimientos de usuarios
// eliminados.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		price      NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category   TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id            BIGSERIAL PRIMARY KEY,
		product_id    UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		type          TEXT NOT NULL CHECK (type IN ('entrada', 'saida')),
		quantity      BIGINT NOT NULL CHECK (quantity > 0),
		movement_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id       UUID REFERENCES users(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product
		ON stock_movements (product_id, movement_date DESC, id DESC)`,
}

// EnsureSchema crea las tablas si no existen. Se invoca al arrancar la API y
// desde cmd/migrate.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
