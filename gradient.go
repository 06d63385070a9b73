package maimaidx

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channel orientation indices for Gradient.Horizontal.
const (
	ChannelRed = iota
	ChannelGreen
	ChannelBlue
)

// Gradient fills a canvas with an independent linear ramp per color channel.
//
// Each of the red, green and blue channels runs from Start to Stop, along
// the x axis when its Horizontal flag is set and along the y axis
// otherwise. Mixing orientations gives a non-separable gradient, e.g. red
// changing left to right while green changes top to bottom.
//
// Alpha values in Start and Stop are ignored; the result is opaque.
type Gradient struct {
	Start      color.NRGBA
	Stop       color.NRGBA
	Horizontal [3]bool
}

// DefaultGradient returns the lilac to pale yellow vertical gradient used
// for score card backgrounds.
func DefaultGradient() Gradient {
	return Gradient{
		Start: color.NRGBA{R: 203, G: 162, B: 253, A: 0xff},
		Stop:  color.NRGBA{R: 251, G: 244, B: 127, A: 0xff},
	}
}

// DrawGradient is shorthand for Gradient{start, stop, horizontal}.Fill.
func DrawGradient(width, height int, start, stop color.NRGBA, horizontal [3]bool) (*image.NRGBA, error) {
	return Gradient{Start: start, Stop: stop, Horizontal: horizontal}.Fill(width, height)
}

// Fill returns a width×height opaque canvas painted with the gradient.
//
// Along an axis of n pixels, pixel i gets start + i×(stop−start)/(n−1),
// truncated to 8 bits; the last pixel is exactly stop. A one-pixel axis
// holds start.
func (g Gradient) Fill(width, height int) (*image.NRGBA, error) {
	if width <= 0 {
		return nil, &InvalidParameterError{Name: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &InvalidParameterError{Name: "height", Value: height, Reason: "must be positive"}
	}

	starts := [3]uint8{g.Start.R, g.Start.G, g.Start.B}
	stops := [3]uint8{g.Stop.R, g.Stop.G, g.Stop.B}

	var ramps [3][]uint8
	for c := range ramps {
		n := height
		if g.Horizontal[c] {
			n = width
		}
		ramps[c] = ramp(starts[c], stops[c], n)
	}

	img := imaging.New(width, height, color.NRGBA{A: 0xff})
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			px := row[x*4 : x*4+3]
			for c := range ramps {
				if g.Horizontal[c] {
					px[c] = ramps[c][x]
				} else {
					px[c] = ramps[c][y]
				}
			}
		}
	}

	Logger().Debug("maimaidx: gradient filled", "width", width, "height", height, "horizontal", g.Horizontal)
	return img, nil
}

// ramp returns n evenly spaced values from start to stop inclusive.
func ramp(start, stop uint8, n int) []uint8 {
	out := make([]uint8, n)
	if n == 1 {
		out[0] = start
		return out
	}

	from := float64(start)
	step := (float64(stop) - from) / float64(n-1)
	for i := range out {
		out[i] = uint8(from + float64(i)*step)
	}
	out[n-1] = stop
	return out
}
