// Package maimaidx renders the small raster images a chat-bot plugin
// attaches to its replies: plain text labels, gradient backgrounds, and
// their encoded transport forms.
//
// # Overview
//
// Text measurement and drawing live in the text subpackage. This package
// builds on it:
//
//   - LabelBuilder turns multi-line text into a minimal white image
//   - Gradient fills a canvas with per-channel linear ramps
//   - ToBase64 and ToByteStream encode images for message payloads
//
// # Quick Start
//
//	lb, err := maimaidx.NewLabelBuilder("static/SourceHanSansSC-Bold.otf")
//	if err != nil {
//	    return err
//	}
//	img, err := lb.Build("line one\nline two")
//	if err != nil {
//	    return err
//	}
//	payload, err := maimaidx.ToBase64(img, maimaidx.PNG)
//	// payload starts with "base64://"
//
// # Logging
//
// The package is silent by default. SetLogger enables structured logging
// through log/slog for this package and text.
//
// # Concurrency
//
// All functions are synchronous. A LabelBuilder may be shared between
// goroutines; every Build allocates its own canvas and font face.
package maimaidx
