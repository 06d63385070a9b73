package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// BBox is the tight ink box of a string in whole pixels.
// Coordinates are relative to an origin at the left end of the ascender
// line, so Top is the gap between the ascender line and the tallest glyph
// and Bottom is how far the ink reaches below the ascender line.
// Left may be nonzero for glyphs with side bearings.
//
// A BBox is only meaningful for the text, font and size that produced it.
type BBox struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (b BBox) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BBox) Height() int { return b.Bottom - b.Top }

// Empty reports whether the box encloses no ink.
func (b BBox) Empty() bool { return b.Left >= b.Right || b.Top >= b.Bottom }

// Rect returns the box as an image.Rectangle.
func (b BBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// BBox measures s with this face. Empty and whitespace-only strings yield
// the zero box.
func (f *Face) BBox(s string) BBox {
	ink, _ := font.BoundString(f.face, prepare(s))
	if ink.Empty() {
		return BBox{}
	}
	ascent := f.face.Metrics().Ascent
	return BBox{
		Left:   ink.Min.X.Floor(),
		Top:    (ascent + ink.Min.Y).Floor(),
		Right:  ink.Max.X.Ceil(),
		Bottom: (ascent + ink.Max.Y).Ceil(),
	}
}

// Advance returns the total advance width of s in pixels, kerning included.
func (f *Face) Advance(s string) float64 {
	return fixedToFloat64(font.MeasureString(f.face, prepare(s)))
}

// bounds returns the ink bounds and advance of s relative to the dot.
func (f *Face) bounds(s string) (fixed.Rectangle26_6, fixed.Int26_6) {
	return font.BoundString(f.face, s)
}

// prepare normalizes s to NFC so that decomposed sequences map onto the
// precomposed glyphs a font without shaping support can render.
func prepare(s string) string {
	return norm.NFC.String(s)
}
