package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("invalid box parameters")
	// ErrUnsupportedStyle matches every *UnsupportedStyleError via errors.Is.
	ErrUnsupportedStyle = errors.New("unsupported box style")
	// ErrEmptyPanelList is returned when the estimator is given no panels.
	ErrEmptyPanelList = errors.New("panel list is empty")
	// ErrNoSheetAvailable is returned when the sheet catalog has no entries.
	ErrNoSheetAvailable = errors.New("no sheet size available in catalog")
)

// ValidationError reports a bad or contradictory box dimension.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnsupportedStyleError reports a box style with no panel template.
type UnsupportedStyleError struct {
	Style string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported box style %q", e.Style)
}

func (e *UnsupportedStyleError) Is(target error) bool {
	return target == ErrUnsupportedStyle
}

// IsInputError reports whether err was caused by the caller's parameters
// rather than by configuration.
func IsInputError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrUnsupportedStyle)
}
