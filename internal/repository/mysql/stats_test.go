package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM institutions`).WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM verifiers`).WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM certificates`).WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

	stats, err := NewStatsRepository(sqlx.NewDb(db, "mysql")).Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Institutions)
	assert.Equal(t, int64(3), stats.Verifiers)
	assert.Equal(t, int64(0), stats.Certificates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts_MissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM institutions`).WillReturnError(errors.New("Table 'academia_veritas.institutions' doesn't exist"))

	_, err = NewStatsRepository(sqlx.NewDb(db, "mysql")).Counts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count institutions")
}
