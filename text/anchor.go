package text

import "golang.org/x/image/math/fixed"

// Anchor is a two-letter code selecting which point of a text box a draw
// position refers to. The first letter is horizontal:
//
//	l  left edge of the advance box
//	m  horizontal middle of the advance box
//	r  right edge of the advance box
//
// The second letter is vertical:
//
//	a  ascender line
//	t  top of the glyph ink
//	m  middle between ascender and descender lines
//	s  baseline
//	b  bottom of the glyph ink
//	d  descender line
//
// Multi-line text rejects t and b, which depend on the ink of one line.
// There s is the baseline of the first line.
type Anchor string

// Anchor codes.
const (
	AnchorLeftAscender    Anchor = "la"
	AnchorLeftTop         Anchor = "lt"
	AnchorLeftMiddle      Anchor = "lm"
	AnchorLeftBaseline    Anchor = "ls"
	AnchorLeftBottom      Anchor = "lb"
	AnchorLeftDescender   Anchor = "ld"
	AnchorMiddleAscender  Anchor = "ma"
	AnchorMiddleTop       Anchor = "mt"
	AnchorCenter          Anchor = "mm"
	AnchorMiddleBaseline  Anchor = "ms"
	AnchorMiddleBottom    Anchor = "mb"
	AnchorMiddleDescender Anchor = "md"
	AnchorRightAscender   Anchor = "ra"
	AnchorRightTop        Anchor = "rt"
	AnchorRightMiddle     Anchor = "rm"
	AnchorRightBaseline   Anchor = "rs"
	AnchorRightBottom     Anchor = "rb"
	AnchorRightDescender  Anchor = "rd"
)

// ParseAnchor validates s and returns it as an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	a := Anchor(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate reports whether a is a known two-letter anchor code.
func (a Anchor) Validate() error {
	if len(a) != 2 {
		return &InvalidParameterError{Name: "anchor", Value: string(a), Reason: "must be two letters"}
	}
	switch a[0] {
	case 'l', 'm', 'r':
	default:
		return &InvalidParameterError{Name: "anchor", Value: string(a), Reason: "horizontal part must be one of l, m, r"}
	}
	switch a[1] {
	case 'a', 't', 'm', 's', 'b', 'd':
	default:
		return &InvalidParameterError{Name: "anchor", Value: string(a), Reason: "vertical part must be one of a, t, m, s, b, d"}
	}
	return nil
}

// String returns the anchor code.
func (a Anchor) String() string {
	return string(a)
}

func (a Anchor) horizontal() byte { return a[0] }
func (a Anchor) vertical() byte   { return a[1] }

// validateMultiline rejects vertical anchors that depend on the ink of a
// single line.
func (a Anchor) validateMultiline() error {
	switch a.vertical() {
	case 't', 'b':
		return &InvalidParameterError{Name: "anchor", Value: string(a), Reason: "multi-line text does not support t or b vertical anchors"}
	default:
		return nil
	}
}

// origin converts an anchored position into the dot (baseline origin) for a
// single line, given its ink bounds and advance relative to the dot.
func (a Anchor) origin(x, y fixed.Int26_6, ink fixed.Rectangle26_6, advance fixed.Int26_6, m Metrics) fixed.Point26_6 {
	ascent, descent := floatToFixed(m.Ascent), floatToFixed(m.Descent)

	switch a.horizontal() {
	case 'm':
		x -= advance / 2
	case 'r':
		x -= advance
	}

	switch a.vertical() {
	case 'a':
		y += ascent
	case 't':
		y -= ink.Min.Y
	case 'm':
		y += (ascent - descent) / 2
	case 'b':
		y -= ink.Max.Y
	case 'd':
		y -= descent
	}

	return fixed.Point26_6{X: x, Y: y}
}
