// Package repair rehashes the passwords of known test accounts.
package repair

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"veritas/internal/database"
	"veritas/internal/domain"
	"veritas/internal/repository/mysql"
	"veritas/internal/security"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
	"veritas/pkg/validator"
)

type Service struct {
	cfg     config.DatabaseConfig
	hasher  *security.PasswordHasher
	connect database.Connector
	logger  logger.Logger
}

func NewService(cfg *config.Config, hasher *security.PasswordHasher, connect database.Connector, log logger.Logger) *Service {
	return &Service{
		cfg:     cfg.Database,
		hasher:  hasher,
		connect: connect,
		logger:  log,
	}
}

// Outcome records what one credential update did.
type Outcome struct {
	Kind         domain.AccountKind
	Email        string
	RowsAffected int64
}

// Repair hashes every credential, then connects to the configured database
// and stores the hashes in a single transaction. Nothing is committed unless
// all updates succeed. Updates that match no row, or more than one, are
// logged as warnings rather than failing the run. An invalid credential is
// reported as ErrInvalidConfiguration before any connection is opened.
func (s *Service) Repair(ctx context.Context, creds []domain.Credential) ([]Outcome, error) {
	v := validator.New()
	for _, c := range creds {
		if err := v.Validate(c); err != nil {
			return nil, verrors.Mark(fmt.Errorf("%s: %w", c.Email, err), verrors.ErrInvalidConfiguration)
		}
	}

	// Hash outside the transaction.
	hashes := make([]string, len(creds))
	for i, c := range creds {
		hash, err := s.hasher.Hash(c.Password)
		if err != nil {
			return nil, err
		}
		hashes[i] = hash
		s.logger.Debug("New password hash generated", map[string]interface{}{
			"kind":        c.Kind,
			"email":       c.Email,
			"hash_prefix": hashPrefix(hash),
			"cost":        s.hasher.Cost(),
		})
	}

	db, err := s.connect(ctx, database.DSN(s.cfg))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var outcomes []Outcome
	err = database.WithTx(ctx, db, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := mysql.NewAccountRepository(tx)

		for i, c := range creds {
			n, err := repo.UpdatePasswordHash(ctx, c.Kind, c.Email, hashes[i])
			if err != nil {
				return err
			}
			outcomes = append(outcomes, Outcome{Kind: c.Kind, Email: c.Email, RowsAffected: n})

			fields := map[string]interface{}{
				"kind":          c.Kind,
				"email":         c.Email,
				"rows_affected": n,
			}
			switch {
			case n == 0:
				s.logger.Warn("No account matched email", fields)
			case n > 1:
				s.logger.Warn("Email matched more than one account", fields)
			default:
				s.logger.Info("Password hash updated", fields)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

// hashPrefix returns the "$2a$10$" algorithm and cost part of a bcrypt hash.
func hashPrefix(hash string) string {
	if len(hash) < 7 {
		return hash
	}
	return hash[:7]
}
