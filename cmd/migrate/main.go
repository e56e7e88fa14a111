package main

import (
	"bank_backend/internal/config" // Custom import path (Config)
	"bank_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for schema bootstrap
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create tables, constraints and indexes
}
