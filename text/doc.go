// Package text measures and paints text onto raster surfaces.
//
// The pipeline separates font data from its use at a size:
//
//   - FontSource: a parsed TTF/OTF file (golang.org/x/image/font/opentype)
//   - Face: a FontSource resolved at one pixel size
//   - Renderer: measures and draws on a caller-owned draw.Image
//
// # Example usage
//
//	canvas := image.NewNRGBA(image.Rect(0, 0, 400, 100))
//	r := text.NewRenderer(canvas, "fonts/SourceHanSansSC-Bold.otf")
//
//	box, err := r.Measure("Hello", 24)
//	if err != nil {
//	    return err
//	}
//
//	opts := text.DefaultDrawOptions()
//	opts.Anchor = text.AnchorCenter
//	opts.StrokeWidth = 2
//	opts.StrokeFill = color.Black
//	err = r.DrawWithShadow(image.Pt(200, 50), 24, "Hello", text.DefaultShadowOffset, opts)
//
// Bounding boxes follow the convention of measuring from the left end of
// the ascender line: a BBox's Bottom is the height a line of that text
// occupies when drawn with AnchorLeftAscender.
//
// Text is normalized to NFC before layout. There is no shaping, so scripts
// that need it render glyph by glyph.
package text
