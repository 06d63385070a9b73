package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is immutable after creation and safe for concurrent use.
type FontSource struct {
	font *opentype.Font
	path string
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	return newFontSource(data, "")
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the caller's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}
	return newFontSource(data, path)
}

func newFontSource(data []byte, path string) (*FontSource, error) {
	if len(data) == 0 {
		return nil, &FontLoadError{Path: path, Err: ErrEmptyFontData}
	}

	// opentype.Parse keeps a reference to its input.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: fmt.Errorf("parse font: %w", err)}
	}

	s := &FontSource{font: f, path: path}
	s.name = extractFontName(f)

	slogger().Debug("text: font source loaded", "path", path, "name", s.name, "bytes", len(data))
	return s, nil
}

// Face resolves the source at the given pixel size.
// Sizes at or below zero fail with a *FontLoadError wrapping an
// *InvalidParameterError.
//
// The returned Face must be closed when no longer needed.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if size <= 0 {
		return nil, &FontLoadError{
			Path: s.path,
			Size: size,
			Err:  &InvalidParameterError{Name: "size", Value: size, Reason: "must be positive"},
		}
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // size is in pixels
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, &FontLoadError{Path: s.path, Size: size, Err: err}
	}

	return &Face{source: s, size: size, face: otFace}, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Path returns the file the source was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	return s.path
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
