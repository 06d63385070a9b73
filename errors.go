package maimaidx

import (
	"errors"
	"fmt"

	"github.com/SherkeyXD/nonebot-plugin-maimaidx/text"
)

// Error kinds shared with the text package, re-exported so callers need
// only one import.
var (
	// ErrFontLoad matches every font loading failure.
	ErrFontLoad = text.ErrFontLoad

	// ErrInvalidParameter matches every rejected argument.
	ErrInvalidParameter = text.ErrInvalidParameter

	// ErrEncoding matches every *EncodingError.
	ErrEncoding = errors.New("maimaidx: encoding failed")
)

// FontLoadError is the error type for fonts that cannot be resolved.
type FontLoadError = text.FontLoadError

// InvalidParameterError is the error type for rejected arguments.
type InvalidParameterError = text.InvalidParameterError

// EncodingError is returned when an image cannot be encoded in the
// requested container format.
type EncodingError struct {
	// Format is the requested format name.
	Format string

	// Err is the underlying cause.
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("maimaidx: encode %s: %v", e.Format, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }
