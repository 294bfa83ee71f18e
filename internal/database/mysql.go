// Package database opens MySQL connections for the admin tools and scopes
// transactions on them.
package database

import (
	"context"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"veritas/pkg/config"
	verrors "veritas/pkg/errors"
)

const DriverName = "mysql"

// Connector opens a verified connection for a DSN. Connect is the
// production implementation; tests substitute sqlmock-backed handles.
type Connector func(ctx context.Context, dsn string) (*sqlx.DB, error)

// ServerDSN addresses the MySQL server without selecting a schema, for
// statements such as CREATE DATABASE.
func ServerDSN(cfg config.DatabaseConfig) string {
	return newDriverConfig(cfg, "").FormatDSN()
}

// DSN addresses cfg.Name on the server.
func DSN(cfg config.DatabaseConfig) string {
	return newDriverConfig(cfg, cfg.Name).FormatDSN()
}

// MigrateDSN is DSN with multi-statement support, which golang-migrate needs
// to run whole migration files.
func MigrateDSN(cfg config.DatabaseConfig) string {
	c := newDriverConfig(cfg, cfg.Name)
	c.MultiStatements = true
	return c.FormatDSN()
}

func newDriverConfig(cfg config.DatabaseConfig, dbName string) *mysql.Config {
	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	c.DBName = dbName
	c.ParseTime = true
	c.Timeout = cfg.ConnectTimeout
	if cfg.Charset != "" {
		c.Params = map[string]string{"charset": cfg.Charset}
	}
	return c
}

// Connect opens a pool for dsn and pings it. Any failure is returned marked
// with ErrDatabaseUnavailable; the driver error stays reachable via
// errors.As.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, dsn)
	if err != nil {
		return nil, verrors.Mark(err, verrors.ErrDatabaseUnavailable)
	}
	return db, nil
}
