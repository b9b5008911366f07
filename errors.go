package staticmap

import (
	"errors"
	"fmt"
)

// ValidationError is returned when the arguments given to a
// url builder are missing or malformed. It signals a bad call
// site, not something worth retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("staticmap: invalid %s: %s", ve.Field, ve.Reason)
}

// IsValidation returns true if the error
// given is or wraps a ValidationError.
func IsValidation(e error) bool {
	if e == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(e, &ve)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func invalidf(field, format string, v ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, v...)}
}
