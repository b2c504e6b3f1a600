// Package errdefs defines general error types and error operations.
package errdefs

import (
	"errors"
	"fmt"
)

// Newf wraps the base error and a formatted error created by fmt.Errorf.
// The result matches both base and any error wrapped by the format with
// errors.Is, and reads as "<base>: <detail>".
func Newf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", base, fmt.Errorf(format, args...))
}

// NewE wraps the base error and the input error. A nil err stays nil and an
// err that already matches base is returned unchanged.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return fmt.Errorf("%w: %w", base, err)
}
