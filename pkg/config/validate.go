// Package config loads and validates tool configuration.
package config

import (
	verrors "veritas/pkg/errors"
	"veritas/pkg/validator"
)

// Validate ensures the configuration can be used to reach the database.
func (c *Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return verrors.Mark(err, verrors.ErrInvalidConfiguration)
	}
	return nil
}
