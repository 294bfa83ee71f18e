// Checks that an institution or verifier can log in with a password, using
// the same hash comparison the API performs.
//
// Usage:
//
//	verify_login <institution|verifier> <email> <password>
package main

import (
	"context"
	"fmt"
	"os"

	"veritas/internal/database"
	"veritas/internal/domain"
	"veritas/internal/repository/mysql"
	"veritas/internal/security"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
)

func main() {
	_ = config.LoadEnvFile()

	cfg := config.Load()
	log := logger.NewWithOptions("verify-login", logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	if len(os.Args) < 4 {
		fmt.Println("Usage: verify_login <institution|verifier> <email> <password>")
		os.Exit(2)
	}
	kind, email, password := domain.AccountKind(os.Args[1]), os.Args[2], os.Args[3]

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", verrors.Fields(err))
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, database.DSN(cfg.Database))
	if err != nil {
		log.Fatal("Failed to connect to database", verrors.Fields(err))
	}
	defer db.Close()

	account, err := mysql.NewAccountRepository(db).FindByEmail(ctx, kind, email)
	if err != nil {
		log.Error("Account lookup failed", verrors.Fields(err))
		os.Exit(1)
	}

	fmt.Printf("Account: %s <%s>\n", account.Name, account.Email)
	fmt.Printf("Hash: %s\n", account.PasswordHash)

	hasher := security.NewPasswordHasher(cfg.Security.BcryptCost)
	if err := hasher.Verify(account.PasswordHash, password); err != nil {
		fmt.Printf("Compare FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Compare SUCCESS")
}
