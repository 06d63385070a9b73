package maimaidx

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common colors.
var (
	White       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black       = color.NRGBA{A: 0xff}
	Transparent = color.NRGBA{}
)

// ParseColor parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. Alpha defaults to opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if !isHex(hex) {
		return color.NRGBA{}, &InvalidParameterError{Name: "color", Value: s, Reason: "must be hex digits"}
	}

	var rgb, alpha string
	switch len(hex) {
	case 3, 6:
		rgb = hex
	case 4:
		rgb, alpha = hex[:3], hex[3:]+hex[3:]
	case 8:
		rgb, alpha = hex[:6], hex[6:]
	default:
		return color.NRGBA{}, &InvalidParameterError{Name: "color", Value: s, Reason: "must have 3, 4, 6 or 8 hex digits"}
	}

	c, err := colorful.Hex("#" + rgb)
	if err != nil {
		return color.NRGBA{}, &InvalidParameterError{Name: "color", Value: s, Reason: err.Error()}
	}
	r, g, b := c.RGB255()

	a := uint64(0xff)
	if alpha != "" {
		// isHex already validated the digits.
		a, _ = strconv.ParseUint(alpha, 16, 8)
	}

	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is meant for package-level color constants.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
