// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

var (
	// ErrNotFound signals that no poll exists under the requested id.
	ErrNotFound = errors.New("poll not found")
	// ErrUnauthorized signals an admin secret mismatch. Any difference from
	// the stored secret, down to one character, is a mismatch.
	ErrUnauthorized = errors.New("invalid admin secret")
)

// ValidationError reports malformed input, caught before anything is
// written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
