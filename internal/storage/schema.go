package storage

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menus (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		price INTEGER NOT NULL CHECK (price >= 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		customer_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'unpaid' CHECK (status IN ('unpaid', 'paid', 'cancelled')),
		total_amount INTEGER NOT NULL DEFAULT 0,
		payment_method TEXT CHECK (payment_method IN ('cash', 'qris', 'transfer')),
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		paid_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_id INTEGER NOT NULL REFERENCES menus(id),
		menu_name TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		price INTEGER NOT NULL CHECK (price >= 0),
		subtotal INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'void')),
		is_printed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_name)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_printed ON order_items (order_id, is_printed)`,
}

// EnsureSchema creates the POS tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
