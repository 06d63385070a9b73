package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource resolved at one pixel size.
// A Face is immutable; boxes and drawings produced with it are only valid
// for its size.
type Face struct {
	source *FontSource
	size   float64
	face   font.Face
}

// Size returns the pixel size of this face.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Close releases the underlying glyph rasterizer.
func (f *Face) Close() error {
	return f.face.Close()
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts x to fixed.Int26_6, rounding to the nearest 1/64.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
