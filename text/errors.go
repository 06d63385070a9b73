package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontLoad matches every *FontLoadError via errors.Is.
	ErrFontLoad = errors.New("text: font load failed")

	// ErrInvalidParameter matches every *InvalidParameterError via errors.Is.
	ErrInvalidParameter = errors.New("text: invalid parameter")
)

// FontLoadError is returned when a font cannot be resolved at a size:
// the file is missing or unreadable, the data is not a valid font, or the
// requested size is not positive.
type FontLoadError struct {
	// Path is the font file path, empty for fonts parsed from memory.
	Path string

	// Size is the requested pixel size, zero when the failure happened
	// before a size was involved.
	Size float64

	// Err is the underlying cause.
	Err error
}

func (e *FontLoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "<memory>"
	}
	if e.Size != 0 {
		return fmt.Sprintf("text: load font %s at size %g: %v", where, e.Size, e.Err)
	}
	return fmt.Sprintf("text: load font %s: %v", where, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFontLoad.
func (e *FontLoadError) Is(target error) bool { return target == ErrFontLoad }

// InvalidParameterError is returned when a caller-supplied value is out of
// range or malformed.
type InvalidParameterError struct {
	// Name identifies the parameter ("size", "anchor", "stroke width", ...).
	Name string

	// Value is the offending value.
	Value any

	// Reason says what was expected.
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("text: invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
