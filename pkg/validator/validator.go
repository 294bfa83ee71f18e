// ==============================================================================
// VALIDATOR PACKAGE - pkg/validator/validator.go
// ==============================================================================
package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// sqlIdentifier matches unquoted MySQL schema/table names we are willing to
// interpolate into USE and CREATE DATABASE statements.
var sqlIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]{0,63}$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := &Validator{
		validate: validator.New(),
	}
	v.registerCustomValidations()
	return v
}

// ValidationError lists the fields that failed validation, keyed by their
// namespace (e.g. "Config.Database.Port"), with a readable message each.
type ValidationError struct {
	Fields   map[string]string
	messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.messages)
}

// FieldErrors returns the field -> message map for structured logging.
func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}

// Validate checks i against its struct tags. Tag failures come back as a
// *ValidationError; anything else (e.g. a non-struct argument) is returned
// as is.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			verr := &ValidationError{Fields: make(map[string]string, len(validationErrors))}
			for _, e := range validationErrors {
				verr.messages = append(verr.messages, fmt.Sprintf(
					"Field '%s' failed validation '%s'",
					e.Namespace(),
					e.Tag(),
				))
				verr.Fields[e.Namespace()] = fieldMessage(e)
			}
			return verr
		}
		return err
	}
	return nil
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "sql_identifier":
		return "Must be a plain SQL identifier"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	}
	return fmt.Sprintf("failed validation on '%s'", e.Tag())
}

func (v *Validator) registerCustomValidations() {
	_ = v.validate.RegisterValidation("sql_identifier", func(fl validator.FieldLevel) bool {
		return IsSQLIdentifier(fl.Field().String())
	})
}

// IsSQLIdentifier reports whether name can be used unquoted as a schema name.
func IsSQLIdentifier(name string) bool {
	return sqlIdentifier.MatchString(name)
}
