// MySQL database setup tool for AcademiaVeritas.
//
// Creates the database and tables from SCHEMA_FILE, inserts sample
// institutions and verifiers, then reconnects and prints table counts.
// Safe to run repeatedly. Connection settings come from DB_HOST, DB_PORT,
// DB_USER, DB_PASSWORD and DB_NAME (a .env file is read when present).
//
// SCHEMA_FILE defaults to schema/database_schema.sql, resolved against the
// working directory, so run the tool from the repository root or set
// SCHEMA_FILE to an absolute path.
//
// Exit status is 0 on success and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"veritas/internal/bootstrap"
	"veritas/internal/database"
	"veritas/internal/domain"
	"veritas/internal/security"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
)

func main() {
	envErr := config.LoadEnvFile()

	cfg := config.Load()
	log := logger.NewWithOptions("setup-db", logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}).With(map[string]interface{}{"run_id": uuid.NewString()})

	if envErr != nil {
		log.Debug("No .env file loaded, relying on environment variables", map[string]interface{}{"error": envErr.Error()})
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", verrors.Fields(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Setting up AcademiaVeritas MySQL database", map[string]interface{}{
		"host":        cfg.Database.Host,
		"port":        cfg.Database.Port,
		"database":    cfg.Database.Name,
		"schema_file": cfg.Schema.File,
	})

	hasher := security.NewPasswordHasher(cfg.Security.BcryptCost)
	svc := bootstrap.NewService(cfg, hasher, database.Connect, log)

	result, err := svc.Run(ctx)
	if err != nil {
		switch {
		case verrors.Is(err, verrors.ErrSchemaNotFound), verrors.Is(err, verrors.ErrEmptySchema):
			log.Fatal("Schema file unusable", verrors.Fields(err))
		case result != nil:
			// Setup committed; only the count check failed.
			log.Error("Database verification failed", verrors.Fields(err))
		case verrors.Is(err, verrors.ErrDatabaseUnavailable):
			log.Error("Failed to connect to MySQL server", verrors.Fields(err))
		default:
			log.Error("Error setting up database", verrors.Fields(err))
		}
		fmt.Println("Database setup failed. Check your MySQL configuration and try again.")
		os.Exit(1)
	}
	stats := result.Stats

	fmt.Println("Database setup completed successfully!")
	fmt.Printf("  Schema statements executed: %d\n", result.Statements)
	fmt.Printf("  Institutions: %d (%d new)\n", stats.Institutions, result.InstitutionsInserted)
	fmt.Printf("  Verifiers:    %d (%d new)\n", stats.Verifiers, result.VerifiersInserted)
	fmt.Printf("  Certificates: %d\n", stats.Certificates)
	fmt.Println()
	fmt.Println("Sample login credentials:")
	fmt.Printf("  Institution: admin@jhu.edu / %s\n", domain.DefaultInstitutionPassword)
	fmt.Printf("  Verifier:    verifier@test.com / %s\n", domain.DefaultVerifierPassword)
}
