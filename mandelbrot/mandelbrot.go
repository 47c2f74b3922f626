package mandelbrot

import (
	"math"
)

type Mandelbrot struct {
	logLogMax float64
	mathLog2  float64
	settings  Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	mandelbrot := Mandelbrot{
		logLogMax: math.Log(math.Log(float64(settings.MaxIterations))),
		mathLog2:  math.Log(2),
		settings:  settings,
	}

	return mandelbrot
}

// EscapeTime iterates z <- z*z + c from z = 0 and reports whether c stayed
// bounded for the full iteration budget. Points that never escape return
// (MaxIterations, true). Points that escape return the smoothed escape
// count and false.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
func (m *Mandelbrot) EscapeTime(c complex128) (float64, bool) {
	maxIterations := m.settings.MaxIterations

	// Points in the main cardioid or the period-2 bulb never escape, so
	// there is no need to iterate them.
	if m.settings.EarlyOut && (insideCardioid(c) || insidePeriod2Bulb(c)) {
		return float64(maxIterations), true
	}

	cr, ci := real(c), imag(c)
	zr, zi := 0.0, 0.0
	i := 0
	for i < maxIterations && zr*zr+zi*zi < m.settings.Boundary {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		i++
	}

	if i == maxIterations {
		return float64(maxIterations), true
	}

	magnitude := math.Sqrt(zr*zr + zi*zi)
	smoothed := float64(i) + (m.logLogMax-math.Log(math.Log(magnitude)))/m.mathLog2
	return smoothed, false
}

// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Cardioid_/_bulb_checking
func insideCardioid(c complex128) bool {
	cr, ci := real(c), imag(c)
	q := (cr-0.25)*(cr-0.25) + ci*ci
	return q*(q+(cr-0.25)) < 0.25*ci*ci
}

func insidePeriod2Bulb(c complex128) bool {
	cr, ci := real(c), imag(c)
	return (cr+1)*(cr+1)+ci*ci < 0.0625
}
