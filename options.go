package maimaidx

import (
	"image/color"
	"image/png"

	"github.com/SherkeyXD/nonebot-plugin-maimaidx/text"
)

// Label defaults.
const (
	DefaultLabelFontSize = 24
	DefaultLabelPadding  = 10
	DefaultLabelMargin   = 4
)

// LabelOption configures a LabelBuilder during creation.
//
// Example:
//
//	lb, err := maimaidx.NewLabelBuilder(fontPath,
//	    maimaidx.WithFontSize(32),
//	    maimaidx.WithPadding(16),
//	)
type LabelOption func(*labelConfig)

// labelConfig holds optional configuration for LabelBuilder creation.
type labelConfig struct {
	fontSize   float64
	padding    int
	margin     int
	background color.Color
	foreground color.Color
	source     *text.FontSource
}

// defaultLabelConfig returns the default label configuration.
func defaultLabelConfig() labelConfig {
	return labelConfig{
		fontSize:   DefaultLabelFontSize,
		padding:    DefaultLabelPadding,
		margin:     DefaultLabelMargin,
		background: White,
		foreground: Black,
	}
}

// WithFontSize sets the pixel size labels are drawn at.
func WithFontSize(size float64) LabelOption {
	return func(c *labelConfig) {
		c.fontSize = size
	}
}

// WithPadding sets the blank border around the text block.
func WithPadding(px int) LabelOption {
	return func(c *labelConfig) {
		c.padding = px
	}
}

// WithMargin sets the gap between consecutive lines.
func WithMargin(px int) LabelOption {
	return func(c *labelConfig) {
		c.margin = px
	}
}

// WithBackground sets the canvas color.
func WithBackground(c color.Color) LabelOption {
	return func(cfg *labelConfig) {
		cfg.background = c
	}
}

// WithForeground sets the text color.
func WithForeground(c color.Color) LabelOption {
	return func(cfg *labelConfig) {
		cfg.foreground = c
	}
}

// WithFontSource draws labels with an already parsed font instead of
// reading the font path on every Build.
func WithFontSource(src *text.FontSource) LabelOption {
	return func(c *labelConfig) {
		c.source = src
	}
}

// EncodeOption configures ToBase64 and ToByteStream.
type EncodeOption func(*encodeConfig)

// encodeConfig holds optional encoder settings.
type encodeConfig struct {
	jpegQuality    int
	pngCompression png.CompressionLevel
}

// defaultEncodeConfig returns the default encoder settings.
func defaultEncodeConfig() encodeConfig {
	return encodeConfig{
		jpegQuality:    95,
		pngCompression: png.DefaultCompression,
	}
}

// WithJPEGQuality sets the JPEG quality, from 1 to 100.
func WithJPEGQuality(quality int) EncodeOption {
	return func(c *encodeConfig) {
		c.jpegQuality = quality
	}
}

// WithPNGCompression sets the PNG compression level.
func WithPNGCompression(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.pngCompression = level
	}
}
