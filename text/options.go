package text

import "image/color"

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingFull,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// Default drawing parameters.
const (
	// DefaultSpacing is the extra gap in pixels between lines of multi-line text.
	DefaultSpacing = 4

	// DefaultShadowOffset is the shadow displacement used by callers that
	// have no preference.
	DefaultShadowOffset = 2
)

// Predefined colors.
var (
	// White is opaque white, the default text color.
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// Transparent is fully transparent black, the default stroke color.
	Transparent = color.NRGBA{}

	// ShadowColor is the half-transparent black used by DrawWithShadow.
	ShadowColor = color.NRGBA{A: 128}
)

// DrawOptions controls how Renderer.Draw paints a string.
// Use DefaultDrawOptions for the documented defaults.
type DrawOptions struct {
	// Color is the glyph fill. Nil means White.
	Color color.Color

	// Anchor selects which point of the text box the draw position refers
	// to. Empty means AnchorLeftTop.
	Anchor Anchor

	// StrokeWidth is the outline radius in pixels. Must not be negative.
	StrokeWidth int

	// StrokeFill is the outline color. Nil means Transparent.
	StrokeFill color.Color

	// Multiline makes '\n' start a new line.
	Multiline bool

	// Spacing is the extra gap between lines when Multiline is set.
	Spacing int
}

// DefaultDrawOptions returns opaque white text anchored at its top-left
// corner, no stroke, single line.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Color:      White,
		Anchor:     AnchorLeftTop,
		StrokeFill: Transparent,
		Spacing:    DefaultSpacing,
	}
}

// normalize fills nil and empty fields with their defaults and validates
// the rest.
func (o DrawOptions) normalize() (DrawOptions, error) {
	if o.Color == nil {
		o.Color = White
	}
	if o.StrokeFill == nil {
		o.StrokeFill = Transparent
	}
	if o.Anchor == "" {
		o.Anchor = AnchorLeftTop
	}
	if err := o.Anchor.Validate(); err != nil {
		return o, err
	}
	if o.StrokeWidth < 0 {
		return o, &InvalidParameterError{Name: "stroke width", Value: o.StrokeWidth, Reason: "must not be negative"}
	}
	if o.Multiline && o.Spacing < 0 {
		return o, &InvalidParameterError{Name: "spacing", Value: o.Spacing, Reason: "must not be negative"}
	}
	return o, nil
}
