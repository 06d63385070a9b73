package text

import (
	"errors"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestParseAnchor(t *testing.T) {
	valid := []string{
		"la", "lt", "lm", "ls", "lb", "ld",
		"ma", "mt", "mm", "ms", "mb", "md",
		"ra", "rt", "rm", "rs", "rb", "rd",
	}
	for _, s := range valid {
		a, err := ParseAnchor(s)
		if err != nil {
			t.Errorf("ParseAnchor(%q) unexpected error: %v", s, err)
			continue
		}
		if a.String() != s {
			t.Errorf("ParseAnchor(%q).String() = %q", s, a.String())
		}
	}

	invalid := []string{"", "l", "lta", "xt", "lx", "LT", "tl"}
	for _, s := range invalid {
		_, err := ParseAnchor(s)
		if err == nil {
			t.Errorf("ParseAnchor(%q) expected error", s)
			continue
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseAnchor(%q) error %v should match ErrInvalidParameter", s, err)
		}
	}
}

func TestAnchorValidateMultiline(t *testing.T) {
	tests := []struct {
		anchor Anchor
		ok     bool
	}{
		{AnchorLeftAscender, true},
		{AnchorCenter, true},
		{AnchorRightDescender, true},
		{AnchorLeftBaseline, true},
		{AnchorMiddleBaseline, true},
		{AnchorRightBaseline, true},
		{AnchorLeftTop, false},
		{AnchorRightTop, false},
		{AnchorMiddleBottom, false},
	}
	for _, tt := range tests {
		err := tt.anchor.validateMultiline()
		if (err == nil) != tt.ok {
			t.Errorf("%s: validateMultiline() = %v, want ok=%v", tt.anchor, err, tt.ok)
		}
	}
}

func TestAnchorOrigin(t *testing.T) {
	m := Metrics{Ascent: 10.5, Descent: 3}
	ink := fixed.R(1, -8, 9, 2)
	advance := fixed.I(12)
	x, y := fixed.I(100), fixed.I(50)

	tests := []struct {
		anchor Anchor
		want   fixed.Point26_6
	}{
		{AnchorLeftBaseline, fixed.Point26_6{X: x, Y: y}},
		{AnchorLeftAscender, fixed.Point26_6{X: x, Y: y + 672}},
		{AnchorLeftDescender, fixed.Point26_6{X: x, Y: y - fixed.I(3)}},
		{AnchorLeftTop, fixed.Point26_6{X: x, Y: y + fixed.I(8)}},
		{AnchorLeftBottom, fixed.Point26_6{X: x, Y: y - fixed.I(2)}},
		{AnchorCenter, fixed.Point26_6{X: x - fixed.I(6), Y: y + 240}},
		{AnchorRightBaseline, fixed.Point26_6{X: x - fixed.I(12), Y: y}},
	}

	for _, tt := range tests {
		if got := tt.anchor.origin(x, y, ink, advance, m); got != tt.want {
			t.Errorf("%s: origin = %v, want %v", tt.anchor, got, tt.want)
		}
	}
}
