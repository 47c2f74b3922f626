// Package render computes Mandelbrot rasters across a set of band workers.
//
// The raster is a tightly packed RGB buffer, 3 bytes per pixel, row-major
// with the origin at the top left. A Renderer partitions its rows into one
// contiguous band per worker; within a job cycle no two workers touch the
// same byte, so the only synchronization is the completion barrier exposed
// through AllDone.
package render

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/redien/mandelbrot/mandelbrot"
)

type Renderer struct {
	bands      []Band
	logger     bslogger.Logger
	pending    atomic.Int64
	raster     []byte
	settings   Settings
	stopped    bool
	workers    []*Worker
	workerWait *sync.WaitGroup
}

// NewRenderer verifies the settings, partitions the raster rows and starts
// one goroutine per worker. The raster must be Width*Height*3 bytes; the
// caller keeps ownership and may read it whenever AllDone reports true.
func NewRenderer(settings Settings, raster []byte) (*Renderer, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}
	if len(raster) != settings.Width*settings.Height*3 {
		return nil, fmt.Errorf("raster is %d bytes, want %d for %dx%d", len(raster), settings.Width*settings.Height*3, settings.Width, settings.Height)
	}

	renderer := &Renderer{
		bands:      Partition(settings.Height, settings.Workers),
		logger:     bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		raster:     raster,
		settings:   settings,
		workerWait: &sync.WaitGroup{},
	}

	ramp := mandelbrot.BuildRamp(settings.Mandelbrot.MaxColors)
	renderer.workers = make([]*Worker, settings.Workers)
	for i := range renderer.workers {
		renderer.workers[i] = newWorker(i, settings, raster, ramp, &renderer.pending)
		renderer.workerWait.Add(1)
		go renderer.workers[i].run(renderer.workerWait)
	}

	renderer.logger.Debugf("Partitioned %d rows into %d bands", settings.Height, settings.Workers)
	return renderer, nil
}

// Submit publishes one job per worker for the given viewport. All previous
// bands must have completed; submitting while bands are in flight is a
// contract violation.
func (r *Renderer) Submit(scale float64, offset complex128) error {
	if r.stopped {
		return errors.New("renderer is stopped")
	}
	if !r.AllDone() {
		return errors.New("bands still in flight")
	}

	r.pending.Add(int64(len(r.workers)))
	for i, worker := range r.workers {
		worker.submit(Job{
			YStart: r.bands[i].YStart,
			YCount: r.bands[i].YCount,
			Scale:  scale,
			Offset: offset,
		})
	}
	return nil
}

// AllDone reports whether every band of the last submitted job cycle has
// been written. Once it returns true the raster is a coherent snapshot
// until the next Submit.
func (r *Renderer) AllDone() bool {
	return r.pending.Load() == 0
}

// StopAndJoin stops all workers and waits for them to exit. A band in
// flight is completed first; there is no mid-band cancellation.
func (r *Renderer) StopAndJoin() {
	if r.stopped {
		return
	}
	r.stopped = true

	for _, worker := range r.workers {
		close(worker.jobs)
	}
	r.workerWait.Wait()
	r.logger.Debug("All workers shut down")
}
