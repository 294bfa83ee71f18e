package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	verrors "veritas/pkg/errors"
)

// PasswordHasher hashes and checks account passwords with bcrypt. The same
// Verify routine backs login checks, so a hash produced here is what login
// accepts.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, falling back to
// bcrypt.DefaultCost when cost is out of bcrypt's accepted range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt hash of password. Two calls with the same
// password return different hashes.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify returns nil when password matches hash, ErrInvalidCredentials when
// it does not, and a wrapped bcrypt error when hash is malformed.
func (h *PasswordHasher) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case err == bcrypt.ErrMismatchedHashAndPassword:
		return verrors.ErrInvalidCredentials
	default:
		return verrors.Wrap(err, "invalid password hash")
	}
}
