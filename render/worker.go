package render

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/redien/mandelbrot/mandelbrot"
)

// Worker computes one band of the raster per job. Bands handed to
// different workers never overlap, so workers write the raster without
// locking.
type Worker struct {
	bandsCompleted int
	height         int
	jobs           chan Job
	logger         bslogger.Logger
	mandelbrot     mandelbrot.Mandelbrot
	pending        *atomic.Int64
	ramp           mandelbrot.Ramp
	raster         []byte
	width          int
}

func newWorker(id int, settings Settings, raster []byte, ramp mandelbrot.Ramp, pending *atomic.Int64) *Worker {
	worker := &Worker{
		height:     settings.Height,
		jobs:       make(chan Job, 1),
		logger:     bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
		mandelbrot: mandelbrot.NewMandelbrot(settings.Mandelbrot),
		pending:    pending,
		ramp:       ramp,
		raster:     raster,
		width:      settings.Width,
	}
	return worker
}

func (w *Worker) submit(job Job) {
	w.jobs <- job
}

// run processes jobs until the job channel is closed. Decrementing the
// pending counter after the band is written is what publishes the band to
// the consumer; closing the channel stops the worker at the next band
// boundary.
func (w *Worker) run(workerWait *sync.WaitGroup) {
	defer workerWait.Done()

	for job := range w.jobs {
		w.logger.Debugf("Rendering %s", job.String())
		w.renderBand(job)
		w.bandsCompleted++
		w.pending.Add(-1)
	}

	w.logger.Debugf("Shutting down after %d bands", w.bandsCompleted)
}

func (w *Worker) renderBand(job Job) {
	for y := job.YStart; y < job.YStart+job.YCount; y++ {
		cy := (float64(y)/float64(w.height))*2 - 1
		for x := 0; x < w.width; x++ {
			cx := (float64(x)/float64(w.width))*2 - 1
			c := complex(cx*job.Scale+real(job.Offset), cy*job.Scale+imag(job.Offset))

			smoothed, inside := w.mandelbrot.EscapeTime(c)

			var red, green, blue uint8
			if !inside {
				red, green, blue = w.ramp.At(smoothed)
			}

			offset := (y*w.width + x) * 3
			w.raster[offset+0] = red
			w.raster[offset+1] = green
			w.raster[offset+2] = blue
		}
	}
}
