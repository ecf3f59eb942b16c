package emission

import (
	"errors"
	"fmt"
)

// Sentinel errors for emission calculation; callers reject the write when either is returned.
var (
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrUnsupportedCategoryValue = errors.New("unsupported category value")
)

// UnsupportedValueError reports a type string that is not part of a factor table vocabulary.
// It matches ErrUnsupportedCategoryValue via errors.Is.
type UnsupportedValueError struct {
	// Kind names the vocabulary, e.g. "fuel type" or "waste type".
	Kind  string
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Value)
}

// Is reports whether target is ErrUnsupportedCategoryValue.
func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedCategoryValue
}

func invalidArgument(field string, value float64) error {
	return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidArgument, field, value)
}

func fmtRequired(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
}
