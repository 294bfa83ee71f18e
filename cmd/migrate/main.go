// ==============================================================================
// DATABASE MIGRATION - cmd/migrate/main.go
// ==============================================================================
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"veritas/internal/database"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
)

func main() {
	_ = config.LoadEnvFile()

	cfg := config.Load()
	log := logger.NewWithOptions("migrate", logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", verrors.Fields(err))
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|version|force VERSION]", nil)
	}
	command := os.Args[1]

	db, err := database.Connect(context.Background(), database.MigrateDSN(cfg.Database))
	if err != nil {
		log.Fatal("Failed to connect to database", verrors.Fields(err))
	}
	defer db.Close()

	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		log.Fatal("Failed to create migration driver", verrors.Fields(err))
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.Migrations.Path, "mysql", driver)
	if err != nil {
		log.Fatal("Failed to create migrate instance", verrors.Fields(err))
	}

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration failed", verrors.Fields(err))
		}
		log.Info("Migrations applied successfully", nil)

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration rollback failed", verrors.Fields(err))
		}
		log.Info("Migrations rolled back successfully", nil)

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("Failed to get version", verrors.Fields(err))
		}
		fmt.Printf("Current version: %d (dirty: %t)\n", version, dirty)

	case "force":
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate force VERSION", nil)
		}
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal("Invalid version", map[string]interface{}{"version": os.Args[2]})
		}
		if err := m.Force(version); err != nil {
			log.Fatal("Force migration failed", verrors.Fields(err))
		}
		log.Info("Forced migration version", map[string]interface{}{"version": version})

	default:
		log.Fatal("Unknown command", map[string]interface{}{"command": command})
	}
}
