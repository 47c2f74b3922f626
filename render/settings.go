package render

import (
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/redien/mandelbrot/mandelbrot"
)

type Settings struct {
	logger bslogger.Logger

	Height     int
	Mandelbrot mandelbrot.Settings
	Width      int
	Workers    int
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	// Zero or negative dimensions are a bug in the caller, not something
	// to paper over with defaults.
	if s.Width <= 0 {
		return fmt.Errorf("width must be positive: %d", s.Width)
	}
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive: %d", s.Height)
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
		s.logger.Debugf("Defaulting to %d workers", s.Workers)
	}
	if s.Workers > s.Height {
		// More workers than rows would leave some bands empty forever.
		s.Workers = s.Height
	}
	if err := s.Mandelbrot.Verify(); err != nil {
		return err
	}
	s.logger.Debug(s.String())

	return nil
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Width: %d\n", s.Width)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}
