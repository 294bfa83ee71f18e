// Rehashes the passwords of the AcademiaVeritas test logins
// (verifier@test.com / verifier123, admin@jhu.edu / admin123).
//
// Both updates commit together or not at all. Exit status is 0 on success
// and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"veritas/internal/database"
	"veritas/internal/domain"
	"veritas/internal/repair"
	"veritas/internal/security"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
)

func main() {
	envErr := config.LoadEnvFile()

	cfg := config.Load()
	log := logger.NewWithOptions("fix-test-users", logger.Options{
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

	if err := run(ctx, cfg, log); err != nil {
		fmt.Println("Error fixing password hashes")
		os.Exit(1)
	}
	fmt.Println("Password hashes fixed successfully!")
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	svc := repair.NewService(cfg, security.NewPasswordHasher(cfg.Security.BcryptCost), database.Connect, log)

	outcomes, err := svc.Repair(ctx, domain.DefaultTestCredentials())
	if err != nil {
		switch {
		case verrors.Is(err, verrors.ErrInvalidConfiguration):
			log.Error("Invalid test credential", verrors.Fields(err))
		case verrors.Is(err, verrors.ErrDatabaseUnavailable):
			log.Error("Failed to connect to database", verrors.Fields(err))
		default:
			log.Error("Password repair rolled back", verrors.Fields(err))
		}
		return err
	}

	for _, o := range outcomes {
		fmt.Printf("Updated %s rows for %s: %d\n", o.Kind, o.Email, o.RowsAffected)
	}
	return nil
}
