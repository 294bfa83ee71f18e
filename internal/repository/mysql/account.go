package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"veritas/internal/domain"
	verrors "veritas/pkg/errors"
)

// AccountRepository reads and writes institution and verifier logins. It
// works on either a *sqlx.DB or a *sqlx.Tx.
type AccountRepository struct {
	db sqlx.ExtContext
}

func NewAccountRepository(db sqlx.ExtContext) *AccountRepository {
	return &AccountRepository{db: db}
}

// UpdatePasswordHash overwrites the hash of the account with email and
// returns the number of rows changed.
func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, kind domain.AccountKind, email, hash string) (int64, error) {
	table, err := kind.Table()
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`UPDATE %s SET password_hash = ? WHERE email = ?`, table)
	res, err := r.db.ExecContext(ctx, query, hash, email)
	if err != nil {
		return 0, verrors.Wrap(err, "failed to update password hash")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, verrors.Wrap(err, "failed to read rows affected")
	}
	return affected, nil
}

// InsertIgnore inserts accounts, skipping any whose email already exists.
// It returns how many rows were actually inserted.
func (r *AccountRepository) InsertIgnore(ctx context.Context, kind domain.AccountKind, accounts []domain.Account) (int64, error) {
	table, err := kind.Table()
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		INSERT IGNORE INTO %s (name, email, password_hash)
		VALUES (:name, :email, :password_hash)`, table)

	var inserted int64
	for i := range accounts {
		res, err := sqlx.NamedExecContext(ctx, r.db, query, &accounts[i])
		if err != nil {
			return inserted, verrors.Wrap(err, fmt.Sprintf("failed to insert %s %s", kind, accounts[i].Email))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, verrors.Wrap(err, "failed to read rows affected")
		}
		inserted += n
	}
	return inserted, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, kind domain.AccountKind, email string) (*domain.Account, error) {
	table, err := kind.Table()
	if err != nil {
		return nil, err
	}

	var account domain.Account
	query := fmt.Sprintf(`SELECT id, name, email, password_hash, created_at FROM %s WHERE email = ?`, table)
	err = sqlx.GetContext(ctx, r.db, &account, query, email)
	if err == sql.ErrNoRows {
		return nil, verrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, verrors.Wrap(err, "failed to find account")
	}
	return &account, nil
}
