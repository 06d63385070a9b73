package text

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/SherkeyXD/nonebot-plugin-maimaidx/internal/filter"
)

// Renderer measures and paints text onto a caller-owned surface.
//
// Every call resolves a fresh Face at the requested size. A Renderer
// created with NewRenderer also re-reads its font file on every call, so
// no font state is shared between calls.
//
// A Renderer must not be used from several goroutines at once when they
// draw to the same surface.
type Renderer struct {
	dst    draw.Image
	path   string
	source *FontSource
}

// NewRenderer creates a Renderer that paints onto dst with the font file at
// fontPath. dst may be nil when the renderer is only used for measuring.
func NewRenderer(dst draw.Image, fontPath string) *Renderer {
	return &Renderer{dst: dst, path: fontPath}
}

// NewRendererWithSource creates a Renderer that uses an already parsed font.
func NewRendererWithSource(dst draw.Image, src *FontSource) *Renderer {
	return &Renderer{dst: dst, source: src}
}

// face resolves the renderer's font at size.
func (r *Renderer) face(size float64) (*Face, error) {
	src := r.source
	if src == nil {
		if size <= 0 {
			return nil, &FontLoadError{
				Path: r.path,
				Size: size,
				Err:  &InvalidParameterError{Name: "size", Value: size, Reason: "must be positive"},
			}
		}
		var err error
		if src, err = NewFontSourceFromFile(r.path); err != nil {
			return nil, err
		}
	}
	face, err := src.Face(size)
	if err != nil {
		return nil, err
	}
	slogger().Debug("text: face resolved", "font", src.Name(), "size", size)
	return face, nil
}

// Measure returns the ink box of text at size. The origin is the left end
// of the ascender line. Measure has no side effects.
func (r *Renderer) Measure(text string, size float64) (BBox, error) {
	face, err := r.face(size)
	if err != nil {
		return BBox{}, err
	}
	defer func() { _ = face.Close() }()

	return face.BBox(text), nil
}

// TextLength returns the advance width of text at size.
func (r *Renderer) TextLength(text string, size float64) (float64, error) {
	face, err := r.face(size)
	if err != nil {
		return 0, err
	}
	defer func() { _ = face.Close() }()

	return face.Advance(text), nil
}

// Draw paints text at pos with a font resolved at size.
//
// Without opts.Multiline the string is drawn as one line. With it, '\n'
// starts a new line; lines are left-aligned inside a block that the anchor
// positions as a whole.
func (r *Renderer) Draw(pos image.Point, size float64, text string, opts DrawOptions) error {
	if r.dst == nil {
		return &InvalidParameterError{Name: "surface", Value: nil, Reason: "renderer has no surface to draw on"}
	}
	opts, err := opts.normalize()
	if err != nil {
		return err
	}
	if opts.Multiline {
		if err := opts.Anchor.validateMultiline(); err != nil {
			return err
		}
	}

	face, err := r.face(size)
	if err != nil {
		return err
	}
	defer func() { _ = face.Close() }()

	x, y := fixed.I(pos.X), fixed.I(pos.Y)
	if opts.Multiline {
		drawMultiline(r.dst, face, x, y, prepare(text), opts)
	} else {
		drawLine(r.dst, face, x, y, prepare(text), opts)
	}
	return nil
}

// DrawWithShadow paints text twice: first offset by (offset, offset) in
// ShadowColor, then at pos in opts.Color. Stroke settings apply to both.
func (r *Renderer) DrawWithShadow(pos image.Point, size float64, text string, offset int, opts DrawOptions) error {
	shadow := opts
	shadow.Color = ShadowColor
	if err := r.Draw(pos.Add(image.Pt(offset, offset)), size, text, shadow); err != nil {
		return err
	}
	return r.Draw(pos, size, text, opts)
}

// drawMultiline lays out '\n'-separated lines. Line pitch is the ink bottom
// of "A" plus the stroke width plus opts.Spacing.
func drawMultiline(dst draw.Image, face *Face, x, y fixed.Int26_6, s string, opts DrawOptions) {
	lines := strings.Split(s, "\n")
	pitch := fixed.I(face.BBox("A").Bottom + opts.StrokeWidth + opts.Spacing)

	widths := make([]fixed.Int26_6, len(lines))
	var maxWidth fixed.Int26_6
	for i, line := range lines {
		widths[i] = font.MeasureString(face.face, line)
		maxWidth = max(maxWidth, widths[i])
	}

	n := fixed.Int26_6(len(lines) - 1)
	// 'a' and 's' place the first line; drawLine applies them.
	switch opts.Anchor.vertical() {
	case 'm':
		y -= n * pitch / 2
	case 'd':
		y -= n * pitch
	}

	for i, line := range lines {
		left := x
		diff := maxWidth - widths[i]
		switch opts.Anchor.horizontal() {
		case 'm':
			left -= diff / 2
		case 'r':
			left -= diff
		}
		drawLine(dst, face, left, y, line, opts)
		y += pitch
	}
}

// drawLine paints one line anchored at (x, y).
func drawLine(dst draw.Image, face *Face, x, y fixed.Int26_6, line string, opts DrawOptions) {
	ink, advance := face.bounds(line)
	dot := opts.Anchor.origin(x, y, ink, advance, face.Metrics())

	if ink.Empty() {
		return
	}

	mask := rasterize(face.face, line, dot, ink, opts.StrokeWidth)
	if opts.StrokeWidth > 0 {
		stroke := filter.NewDilateFilter(opts.StrokeWidth).Apply(mask)
		paint(dst, stroke, opts.StrokeFill)
	}
	paint(dst, mask, opts.Color)
}

// rasterize renders the coverage of line with its baseline origin at dot
// into an alpha mask with room for a dilation of pad pixels.
func rasterize(face font.Face, line string, dot fixed.Point26_6, ink fixed.Rectangle26_6, pad int) *image.Alpha {
	glyphs := image.Rect(
		(dot.X+ink.Min.X).Floor(),
		(dot.Y+ink.Min.Y).Floor(),
		(dot.X+ink.Max.X).Ceil(),
		(dot.Y+ink.Max.Y).Ceil(),
	).Inset(-1)
	r := filter.NewDilateFilter(pad).ExpandBounds(glyphs)

	mask := image.NewAlpha(r)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(line)
	return mask
}

// paint composites c through mask onto dst with source-over blending.
func paint(dst draw.Image, mask *image.Alpha, c color.Color) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	r := mask.Bounds()
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min, draw.Over)
}
