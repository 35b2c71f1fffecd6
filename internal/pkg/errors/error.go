package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrReference        = errors.New("referenced resource does not exist")
	ErrValidation       = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInternal         = errors.New("internal server error")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Validationf builds an ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Referencef builds an ErrReference with a formatted detail message.
func Referencef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrReference, fmt.Sprintf(format, args...))
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
