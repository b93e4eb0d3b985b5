package printcolor

import (
	"errors"
	"fmt"

	"github.com/brandquad/printcolor/colorutils"
)

var (
	ErrOutOfRange      = colorutils.ErrOutOfRange
	ErrInvalidFormat   = colorutils.ErrInvalidFormat
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrDataUnavailable = errors.New("reference dataset unavailable")
)

// NotFoundError is returned when a name query matches nothing, it keeps the
// query for the caller.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown Pantone color: %q. Try a format like 'Pantone 485 C', '485C', or '485 coated'", e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}
