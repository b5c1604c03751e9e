package numfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates an unrecognised format specifier letter.
	ErrInvalidFormat = errors.New("numfmt: invalid format specifier")

	// ErrInvalidPrecision indicates a precision that is not an integer in [0, 99].
	ErrInvalidPrecision = errors.New("numfmt: invalid precision")

	// ErrInvalidLocale indicates a locale name that is not a valid language tag.
	ErrInvalidLocale = errors.New("numfmt: invalid locale")
)

// SpecError wraps a parse error with the offending specifier.
type SpecError struct {
	Spec string
	Err  error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Spec)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}
