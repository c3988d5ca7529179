package storage

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"restaurant-search/config"
)

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		menu_item_id INT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		order_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureDatabase makes sure the target database exists. Managed providers
// usually pre-create the database and do not grant CREATE DATABASE, so any
// failure here is a warning, never fatal: the subsequent pool ping decides
// whether the database is actually reachable.
func EnsureDatabase(cfg *config.Config) {
	if cfg.DatabaseURL != "" {
		log.Println("Connection URL includes a database, skipping CREATE DATABASE step")
		return
	}

	admin, err := sql.Open("postgres", cfg.AdminDSN())
	if err != nil {
		log.Printf("WARNING: could not open admin connection (continuing): %v", err)
		return
	}
	defer admin.Close()

	if err := CreateDatabaseIfMissing(admin, cfg.DBName); err != nil {
		log.Printf("WARNING: CREATE DATABASE not permitted on this provider (continuing): %v", err)
		return
	}
	log.Printf("Verified database exists: %s", cfg.DBName)
}

// CreateDatabaseIfMissing checks pg_database and issues CREATE DATABASE when
// the target is absent. Postgres has no CREATE DATABASE IF NOT EXISTS, hence
// the check-then-create pair.
func CreateDatabaseIfMissing(admin *sql.DB, name string) error {
	var exists bool
	if err := admin.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check database %s: %w", name, err)
	}
	if exists {
		return nil
	}

	if _, err := admin.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

// EnsureTables creates the three tables when absent. Unlike EnsureDatabase,
// failures here are real initialization errors and propagate to the caller.
func EnsureTables(db *sql.DB) error {
	for _, stmt := range tableStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure table `%.40s`: %w", stmt, err)
		}
	}
	log.Println("Tables ensured")
	return nil
}
