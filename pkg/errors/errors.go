// Package errors provides common, reusable error values and helpers.
package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Common errors
var (
	// Connectivity errors, e.g. bad credentials or server down
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// Packaging errors
	ErrSchemaNotFound = errors.New("schema file not found")
	ErrEmptySchema    = errors.New("schema file contains no statements")

	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnknownAccountKind   = errors.New("unknown account kind")
	ErrInvalidSeedAccount   = errors.New("invalid seed account")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Mark tags err with a sentinel so callers can match it with errors.Is while
// the original driver error stays reachable through errors.As.
func Mark(err, sentinel error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// MySQLCode returns the server error number carried by a MySQL driver error.
func MySQLCode(err error) (uint16, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number, true
	}
	return 0, false
}

// fieldErrors is implemented by validation errors that know which fields
// failed.
type fieldErrors interface {
	FieldErrors() map[string]string
}

// Fields returns log fields describing err, including the MySQL error
// number when the driver produced it and the failing fields of a
// validation error.
func Fields(err error) map[string]interface{} {
	fields := map[string]interface{}{"error": err.Error()}
	if code, ok := MySQLCode(err); ok {
		fields["mysql_code"] = code
	}
	var fe fieldErrors
	if errors.As(err, &fe) {
		fields["invalid_fields"] = fe.FieldErrors()
	}
	return fields
}
