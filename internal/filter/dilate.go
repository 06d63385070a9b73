package filter

import "image"

// DilateFilter grows the coverage of an alpha mask by a disk of Radius
// pixels. It is how glyph strokes are produced: the dilated mask painted
// under the original one leaves an outline Radius pixels wide.
type DilateFilter struct {
	// Radius is the disk radius in pixels. Zero leaves the mask unchanged.
	Radius int
}

// NewDilateFilter creates a new dilation filter.
func NewDilateFilter(radius int) *DilateFilter {
	return &DilateFilter{Radius: radius}
}

// Apply returns a new mask with the same bounds as src where every pixel is
// the maximum coverage of src within Radius pixels. Coverage that would fall
// outside src's bounds is dropped, so callers pad src by Radius first.
func (f *DilateFilter) Apply(src *image.Alpha) *image.Alpha {
	if src == nil {
		return nil
	}

	bounds := src.Bounds()
	dst := image.NewAlpha(bounds)
	if f.Radius <= 0 {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(bounds.Min.X, y):], src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)])
		}
		return dst
	}

	disk := diskOffsets(f.Radius)

	// Splat every covered source pixel; uncovered pixels contribute nothing.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := src.Pix[src.PixOffset(x, y)]
			if v == 0 {
				continue
			}
			for _, o := range disk {
				p := image.Point{X: x + o.X, Y: y + o.Y}
				if !p.In(bounds) {
					continue
				}
				i := dst.PixOffset(p.X, p.Y)
				if dst.Pix[i] < v {
					dst.Pix[i] = v
				}
			}
		}
	}

	return dst
}

// ExpandBounds returns the bounds needed to hold the dilated coverage of
// input.
func (f *DilateFilter) ExpandBounds(input image.Rectangle) image.Rectangle {
	if f.Radius <= 0 {
		return input
	}
	return input.Inset(-f.Radius)
}

// diskOffsets lists the integer offsets within radius of the origin.
func diskOffsets(radius int) []image.Point {
	r2 := radius * radius
	offsets := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				offsets = append(offsets, image.Point{X: dx, Y: dy})
			}
		}
	}
	return offsets
}
