// ==============================================================================
// BOOTSTRAP SERVICE - internal/bootstrap/service.go
// ==============================================================================
// Creates the AcademiaVeritas schema on an empty MySQL server, seeds demo
// institutions and verifiers, and reports table counts. Safe to re-run.
// ==============================================================================
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"veritas/internal/database"
	"veritas/internal/domain"
	"veritas/internal/repository/mysql"
	"veritas/internal/schema"
	"veritas/internal/security"
	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
	"veritas/pkg/logger"
	"veritas/pkg/validator"
)

type Service struct {
	cfg        config.DatabaseConfig
	schemaFile string
	seeds      []domain.SeedAccount
	hasher     *security.PasswordHasher
	connect    database.Connector
	logger     logger.Logger
}

func NewService(cfg *config.Config, hasher *security.PasswordHasher, connect database.Connector, log logger.Logger) *Service {
	return &Service{
		cfg:        cfg.Database,
		schemaFile: cfg.Schema.File,
		seeds:      domain.DefaultSeedAccounts(),
		hasher:     hasher,
		connect:    connect,
		logger:     log,
	}
}

// WithSeeds replaces the default demo accounts.
func (s *Service) WithSeeds(seeds []domain.SeedAccount) *Service {
	s.seeds = seeds
	return s
}

// Result summarises one bootstrap run.
type Result struct {
	Statements           int
	InstitutionsInserted int64
	VerifiersInserted    int64
	Stats                *domain.Stats
}

// Run performs Setup followed by Verify on a fresh connection.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	result, err := s.Setup(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.Verify(ctx)
	if err != nil {
		return result, err
	}
	result.Stats = stats
	return result, nil
}

// Setup loads the schema file, executes it on a server-level connection and
// inserts the seed accounts. A missing schema file is reported before any
// connection is opened.
func (s *Service) Setup(ctx context.Context) (*Result, error) {
	if !validator.IsSQLIdentifier(s.cfg.Name) {
		return nil, verrors.Mark(fmt.Errorf("database name %q", s.cfg.Name), verrors.ErrInvalidConfiguration)
	}

	statements, err := schema.Load(s.schemaFile)
	if err != nil {
		return nil, err
	}

	seeds, err := s.hashSeeds()
	if err != nil {
		return nil, err
	}

	db, err := s.connect(ctx, database.ServerDSN(s.cfg))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	s.logger.Info("Connected to MySQL server", map[string]interface{}{
		"host": s.cfg.Host,
		"port": s.cfg.Port,
	})

	if err := s.applySchema(ctx, db, statements); err != nil {
		return nil, err
	}
	s.logger.Info("Database schema created", map[string]interface{}{
		"file":       s.schemaFile,
		"statements": len(statements),
	})

	result := &Result{Statements: len(statements)}
	if err := s.insertSeeds(ctx, db, seeds, result); err != nil {
		return nil, err
	}
	s.logger.Info("Sample data inserted", map[string]interface{}{
		"institutions_inserted": result.InstitutionsInserted,
		"verifiers_inserted":    result.VerifiersInserted,
	})

	return result, nil
}

// Verify opens a new connection with the schema selected and counts rows.
func (s *Service) Verify(ctx context.Context) (*domain.Stats, error) {
	db, err := s.connect(ctx, database.DSN(s.cfg))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	stats, err := mysql.NewStatsRepository(db).Counts(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Database statistics", map[string]interface{}{
		"institutions": stats.Institutions,
		"verifiers":    stats.Verifiers,
		"certificates": stats.Certificates,
	})
	return stats, nil
}

func (s *Service) applySchema(ctx context.Context, db *sqlx.DB, statements []string) error {
	return database.WithTx(ctx, db, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return verrors.Wrap(err, fmt.Sprintf("schema statement %d failed", i+1))
			}
		}
		return nil
	})
}

func (s *Service) insertSeeds(ctx context.Context, db *sqlx.DB, seeds map[domain.AccountKind][]domain.Account, result *Result) error {
	return database.WithTx(ctx, db, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		// The server-level session has no default schema.
		if _, err := tx.ExecContext(ctx, "USE `"+s.cfg.Name+"`"); err != nil {
			return verrors.Wrap(err, "failed to select database")
		}

		repo := mysql.NewAccountRepository(tx)

		n, err := repo.InsertIgnore(ctx, domain.AccountKindInstitution, seeds[domain.AccountKindInstitution])
		if err != nil {
			return err
		}
		result.InstitutionsInserted = n

		n, err = repo.InsertIgnore(ctx, domain.AccountKindVerifier, seeds[domain.AccountKindVerifier])
		if err != nil {
			return err
		}
		result.VerifiersInserted = n
		return nil
	})
}

// hashSeeds validates the seed accounts and hashes their passwords, grouped
// by kind in input order.
func (s *Service) hashSeeds() (map[domain.AccountKind][]domain.Account, error) {
	v := validator.New()
	out := make(map[domain.AccountKind][]domain.Account)

	for _, seed := range s.seeds {
		if err := v.Validate(seed); err != nil {
			return nil, verrors.Mark(fmt.Errorf("%s: %w", seed.Email, err), verrors.ErrInvalidSeedAccount)
		}
		hash, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return nil, err
		}
		out[seed.Kind] = append(out[seed.Kind], domain.Account{
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: hash,
		})
	}
	return out, nil
}
