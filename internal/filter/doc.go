// Package filter provides alpha-mask filters used by text rendering.
//
// Filters operate on *image.Alpha coverage masks and never touch color:
//   - Dilation (disk-shaped maximum filter) for glyph strokes
//
// Masks keep their bounds through a filter; callers grow them with
// ExpandBounds before rasterizing when coverage must not be clipped.
package filter
