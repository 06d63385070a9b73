package maimaidx

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// Base64Prefix marks base64 payloads for consumers that dispatch on
// URI-like prefixes.
const Base64Prefix = "base64://"

// Format is an image container format.
type Format int

// Supported formats. The zero value is PNG.
const (
	PNG Format = iota
	JPEG
	GIF
	TIFF
	BMP
)

var formatNames = map[Format]string{
	PNG:  "PNG",
	JPEG: "JPEG",
	GIF:  "GIF",
	TIFF: "TIFF",
	BMP:  "BMP",
}

var imagingFormats = map[Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	TIFF: imaging.TIFF,
	BMP:  imaging.BMP,
}

// String returns the format name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Unsupported"
}

// ParseFormat resolves a format name or file extension ("png", "JPEG",
// ".jpg", "tif") case-insensitively.
func ParseFormat(s string) (Format, error) {
	imf, err := imaging.FormatFromExtension(s)
	if err != nil {
		return PNG, &EncodingError{Format: s, Err: err}
	}
	for f, candidate := range imagingFormats {
		if candidate == imf {
			return f, nil
		}
	}
	return PNG, &EncodingError{Format: s, Err: imaging.ErrUnsupportedFormat}
}

// ToBase64 encodes img in format and returns Base64Prefix followed by the
// standard base64 encoding of the bytes.
func ToBase64(img image.Image, format Format, opts ...EncodeOption) (string, error) {
	data, err := encode(img, format, opts)
	if err != nil {
		return "", err
	}
	return Base64Prefix + base64.StdEncoding.EncodeToString(data), nil
}

// ToByteStream encodes img in format into memory and returns a reader
// positioned at the first byte.
func ToByteStream(img image.Image, format Format, opts ...EncodeOption) (*bytes.Reader, error) {
	data, err := encode(img, format, opts)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// encode runs the imaging encoder for format. Nothing is returned unless
// the whole image was encoded.
func encode(img image.Image, format Format, opts []EncodeOption) ([]byte, error) {
	imf, ok := imagingFormats[format]
	if !ok {
		return nil, &EncodingError{Format: format.String(), Err: imaging.ErrUnsupportedFormat}
	}
	if img == nil {
		return nil, &EncodingError{Format: format.String(), Err: errors.New("nil image")}
	}

	cfg := defaultEncodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imf,
		imaging.JPEGQuality(cfg.jpegQuality),
		imaging.PNGCompressionLevel(cfg.pngCompression),
	)
	if err != nil {
		return nil, &EncodingError{Format: format.String(), Err: err}
	}

	Logger().Debug("maimaidx: image encoded", "format", format.String(), "bytes", buf.Len())
	return buf.Bytes(), nil
}
