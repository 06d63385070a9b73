package text

// Metrics are the vertical font measures of a Face, in pixels.
// Ascent and Descent are both positive; together they span the ascender
// and descender lines that the a, m and d anchors refer to.
type Metrics struct {
	Ascent  float64
	Descent float64

	// LineGap is the font's extra leading below the descender line.
	LineGap float64

	XHeight   float64
	CapHeight float64
}

// LineHeight returns Ascent + Descent + LineGap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
