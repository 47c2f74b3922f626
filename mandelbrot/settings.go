package mandelbrot

import (
	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Boundary      float64
	EarlyOut      bool
	MaxColors     int
	MaxIterations int
}

func DefaultSettings() Settings {
	s := Settings{EarlyOut: true}
	s.Verify()
	return s
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Boundary <= 0 {
		// Squared escape radius. Radius 2 is the smallest value that
		// bounds the set, and the smoothed count assumes it.
		s.Boundary = 4
	}
	if s.MaxColors <= 0 {
		s.MaxColors = 50
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = 1000
	}
	// s.EarlyOut defaults to false already

	s.logger.Debugf("Boundary: %g MaxIterations: %d MaxColors: %d EarlyOut: %t",
		s.Boundary, s.MaxIterations, s.MaxColors, s.EarlyOut)
	return nil
}
