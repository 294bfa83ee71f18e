package domain

import (
	"fmt"
	"time"

	verrors "veritas/pkg/errors"
)

// AccountKind identifies which account table a row lives in
type AccountKind string

const (
	AccountKindInstitution AccountKind = "institution"
	AccountKindVerifier    AccountKind = "verifier"
)

// Table returns the fixed table name backing the account kind.
func (k AccountKind) Table() (string, error) {
	switch k {
	case AccountKindInstitution:
		return "institutions", nil
	case AccountKindVerifier:
		return "verifiers", nil
	}
	return "", fmt.Errorf("%w: %q", verrors.ErrUnknownAccountKind, string(k))
}

// Account is an institution or verifier login. Email is unique per table.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SeedAccount is a demo account inserted by the bootstrap tool
type SeedAccount struct {
	Kind     AccountKind `validate:"required,oneof=institution verifier"`
	Name     string      `validate:"required,max=255"`
	Email    string      `validate:"required,email,max=255"`
	Password string      `validate:"required,min=6"`
}

// Credential is an (account, plaintext password) pair to be rehashed
type Credential struct {
	Kind     AccountKind `validate:"required,oneof=institution verifier"`
	Email    string      `validate:"required,email"`
	Password string      `validate:"required"`
}

// Stats holds the row counts printed after a bootstrap
type Stats struct {
	Institutions int64 `json:"institutions" db:"institutions"`
	Verifiers    int64 `json:"verifiers" db:"verifiers"`
	Certificates int64 `json:"certificates" db:"certificates"`
}

// DefaultInstitutionPassword and DefaultVerifierPassword are the demo login
// passwords for the seeded and repaired test accounts.
const (
	DefaultInstitutionPassword = "admin123"
	DefaultVerifierPassword    = "verifier123"
)

// DefaultSeedAccounts returns the demo institutions followed by the demo
// verifiers.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Kind: AccountKindInstitution, Name: "Jharkhand University", Email: "admin@jhu.edu", Password: DefaultInstitutionPassword},
		{Kind: AccountKindInstitution, Name: "Indian Institute of Technology", Email: "admin@iit.ac.in", Password: DefaultInstitutionPassword},
		{Kind: AccountKindVerifier, Name: "Test Verifier", Email: "verifier@test.com", Password: DefaultVerifierPassword},
		{Kind: AccountKindVerifier, Name: "HR Department", Email: "hr@company.com", Password: DefaultVerifierPassword},
	}
}

// DefaultTestCredentials returns the test logins repaired by fix_test_users.
func DefaultTestCredentials() []Credential {
	return []Credential{
		{Kind: AccountKindVerifier, Email: "verifier@test.com", Password: DefaultVerifierPassword},
		{Kind: AccountKindInstitution, Email: "admin@jhu.edu", Password: DefaultInstitutionPassword},
	}
}
