package maimaidx

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/SherkeyXD/nonebot-plugin-maimaidx/text"
)

// LabelBuilder renders arbitrary multi-line text onto a minimally sized
// canvas: background color, padding on every side, one fixed-size line per
// '\n'-separated segment. Lines are never wrapped.
type LabelBuilder struct {
	fontPath string
	cfg      labelConfig
}

// NewLabelBuilder creates a LabelBuilder drawing with the font file at
// fontPath. The file is read on every Build unless WithFontSource is given,
// in which case fontPath may be empty.
func NewLabelBuilder(fontPath string, opts ...LabelOption) (*LabelBuilder, error) {
	cfg := defaultLabelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case fontPath == "" && cfg.source == nil:
		return nil, &InvalidParameterError{Name: "font path", Value: fontPath, Reason: "must not be empty"}
	case cfg.fontSize <= 0:
		return nil, &InvalidParameterError{Name: "font size", Value: cfg.fontSize, Reason: "must be positive"}
	case cfg.padding < 0:
		return nil, &InvalidParameterError{Name: "padding", Value: cfg.padding, Reason: "must not be negative"}
	case cfg.margin < 0:
		return nil, &InvalidParameterError{Name: "margin", Value: cfg.margin, Reason: "must not be negative"}
	case cfg.background == nil:
		return nil, &InvalidParameterError{Name: "background", Value: nil, Reason: "must be a color"}
	case cfg.foreground == nil:
		return nil, &InvalidParameterError{Name: "foreground", Value: nil, Reason: "must be a color"}
	}

	return &LabelBuilder{fontPath: fontPath, cfg: cfg}, nil
}

// Build renders s. Surrounding whitespace is trimmed first; an empty result
// is a single empty line.
//
// The canvas is (widest Right + 2×padding) wide and
// (b×lines + margin×(lines−1) + 2×padding) tall, where b is the Bottom of
// the last line's box. Every line is given that same height, which is only
// exact when all lines share the last line's vertical extent.
func (lb *LabelBuilder) Build(s string) (*image.NRGBA, error) {
	src, err := lb.fontSource()
	if err != nil {
		return nil, err
	}

	lines := splitLines(s)
	size := lb.cfg.fontSize
	pad, margin := lb.cfg.padding, lb.cfg.margin

	measurer := text.NewRendererWithSource(nil, src)
	maxWidth, lineHeight := 0, 0
	for _, line := range lines {
		box, err := measurer.Measure(line, size)
		if err != nil {
			return nil, err
		}
		maxWidth = max(maxWidth, box.Right)
		lineHeight = box.Bottom
	}

	n := len(lines)
	width := maxWidth + 2*pad
	height := lineHeight*n + margin*(n-1) + 2*pad

	canvas := imaging.New(width, height, lb.cfg.background)
	r := text.NewRendererWithSource(canvas, src)
	opts := text.DrawOptions{
		Color:  lb.cfg.foreground,
		Anchor: text.AnchorLeftAscender,
	}
	for i, line := range lines {
		pos := image.Pt(pad, pad+i*(margin+lineHeight))
		if err := r.Draw(pos, size, line, opts); err != nil {
			return nil, err
		}
	}

	Logger().Debug("maimaidx: label built",
		"lines", n, "width", width, "height", height, "lineHeight", lineHeight)
	return canvas, nil
}

// ByteStream renders s and returns it PNG-encoded.
func (lb *LabelBuilder) ByteStream(s string) (*bytes.Reader, error) {
	img, err := lb.Build(s)
	if err != nil {
		return nil, err
	}
	return ToByteStream(img, PNG)
}

// fontSource returns the configured source, loading the font file when
// none was given.
func (lb *LabelBuilder) fontSource() (*text.FontSource, error) {
	if lb.cfg.source != nil {
		return lb.cfg.source, nil
	}
	return text.NewFontSourceFromFile(lb.fontPath)
}

// splitLines trims s and splits it on '\n', dropping the '\r' of CRLF line
// endings. The result has at least one element.
func splitLines(s string) []string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
