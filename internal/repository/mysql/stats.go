package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"

	"veritas/internal/domain"
	verrors "veritas/pkg/errors"
)

type StatsRepository struct {
	db sqlx.QueryerContext
}

func NewStatsRepository(db sqlx.QueryerContext) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns the row count of each application table.
func (r *StatsRepository) Counts(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	counts := []struct {
		table string
		dest  *int64
	}{
		{"institutions", &stats.Institutions},
		{"verifiers", &stats.Verifiers},
		{"certificates", &stats.Certificates},
	}

	for _, c := range counts {
		if err := sqlx.GetContext(ctx, r.db, c.dest, "SELECT COUNT(*) FROM "+c.table); err != nil {
			return nil, verrors.Wrap(err, "failed to count "+c.table)
		}
	}

	return &stats, nil
}
