// Generates a bcrypt hash for a password, or checks a password against an
// existing hash.
//
// Usage:
//
//	genhash <password>
//	genhash <password> <hash>
package main

import (
	"fmt"
	"os"

	"veritas/internal/security"
	"veritas/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: genhash <password> [hash]")
		os.Exit(2)
	}

	cfg := config.Load()
	hasher := security.NewPasswordHasher(cfg.Security.BcryptCost)
	password := os.Args[1]

	if len(os.Args) > 2 {
		if err := hasher.Verify(os.Args[2], password); err != nil {
			fmt.Printf("Verification FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Verification SUCCESS")
		return
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
