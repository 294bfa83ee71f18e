// Package domain re-exports core domain types so internal code can import
// `veritas/internal/domain` while using definitions from `veritas/pkg/domain`.
package domain

import pkg "veritas/pkg/domain"

// AccountKind identifies the institutions or verifiers table.
type AccountKind = pkg.AccountKind

// Account is a stored institution or verifier login.
type Account = pkg.Account

// SeedAccount is a demo account inserted by the bootstrap tool.
type SeedAccount = pkg.SeedAccount

// Credential is an account email with the plaintext to rehash.
type Credential = pkg.Credential

// Stats holds table row counts.
type Stats = pkg.Stats

const (
	AccountKindInstitution = pkg.AccountKindInstitution
	AccountKindVerifier    = pkg.AccountKindVerifier

	DefaultInstitutionPassword = pkg.DefaultInstitutionPassword
	DefaultVerifierPassword    = pkg.DefaultVerifierPassword
)

var (
	DefaultSeedAccounts    = pkg.DefaultSeedAccounts
	DefaultTestCredentials = pkg.DefaultTestCredentials
)
