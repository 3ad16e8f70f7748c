package main

import (
	"blog_system/internal/config" // Custom import path (Config)
	"blog_system/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create tables and the cascading posts FK
}
