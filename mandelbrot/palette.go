package mandelbrot

import (
	"math"

	"github.com/redien/mandelbrot/misc"
)

type Color struct {
	R float64
	G float64
	B float64
}

// Ramp is a fixed color ramp indexed by escape count. It is built once and
// never written afterwards, so workers read it without synchronization.
type Ramp []Color

// BuildRamp constructs a palindromic ramp of length 2*maxColors. The second
// half mirrors the first, so interpolation wraps around the ends of the
// ramp without a visible seam.
func BuildRamp(maxColors int) Ramp {
	ramp := make(Ramp, maxColors*2)
	for i := 0; i < maxColors; i++ {
		factor := float64(i) / float64(maxColors)
		inverseFactor := float64(maxColors-i) / float64(maxColors)

		color := Color{
			R: math.Sqrt(math.Sqrt(factor)),
			G: factor,
			B: inverseFactor * 0.5,
		}
		ramp[i] = color
		ramp[maxColors*2-1-i] = color
	}
	return ramp
}

// At maps a smoothed escape count to an 8-bit color by interpolating
// between the two nearest ramp entries, wrapping modulo the ramp length.
// Counts below zero, produced by points that escape on the first iteration
// with a very large |z|, wrap backwards into the ramp.
func (r Ramp) At(smoothed float64) (uint8, uint8, uint8) {
	first := int(math.Floor(smoothed))
	second := first + 1
	fraction := smoothed - float64(first)

	color1 := r[wrap(first, len(r))]
	color2 := r[wrap(second, len(r))]
	red := misc.LerpFloat64(color1.R, color2.R, fraction)
	green := misc.LerpFloat64(color1.G, color2.G, fraction)
	blue := misc.LerpFloat64(color1.B, color2.B, fraction)

	return uint8(red * 255), uint8(green * 255), uint8(blue * 255)
}

// wrap indexes modulo length, mapping negative indices into range.
func wrap(i int, length int) int {
	i %= length
	if i < 0 {
		i += length
	}
	return i
}
