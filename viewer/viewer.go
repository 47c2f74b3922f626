// Package viewer runs the interactive zoom loop: it owns the window, the
// raster and the viewport policy, and consumes the render package through
// its submit / all-done / stop surface.
package viewer

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/redien/mandelbrot/mandelbrot"
	"github.com/redien/mandelbrot/misc"
	"github.com/redien/mandelbrot/render"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL event handling must stay on the thread that created the window.
	runtime.LockOSThread()
}

// Run opens the window and drives frames until the window is closed or
// q/escape is pressed. Each time all bands are done the raster is uploaded
// to a streaming texture, the viewport zooms in toward the configured
// center, and new jobs are published. Pressing s saves a snapshot.
func Run(settings Settings) error {
	logger := bslogger.NewLogger("Viewer", bslogger.Normal, nil)

	raster := make([]byte, settings.Width*settings.Height*3)
	renderer, err := render.NewRenderer(render.Settings{
		Width:      settings.Width,
		Height:     settings.Height,
		Workers:    settings.Workers,
		Mandelbrot: mandelbrot.DefaultSettings(),
	}, raster)
	if err != nil {
		return err
	}
	defer renderer.StopAndJoin()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("unable to initialize sdl - %s", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(settings.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(settings.Width), int32(settings.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("unable to create window - %s", err)
	}
	defer window.Destroy()

	sdlRenderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("unable to create sdl renderer - %s", err)
	}
	defer sdlRenderer.Destroy()

	texture, err := sdlRenderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		int32(settings.Width), int32(settings.Height))
	if err != nil {
		return fmt.Errorf("unable to create texture - %s", err)
	}
	defer texture.Destroy()

	offset := complex(settings.CenterX, settings.CenterY)
	scale := settings.Scale
	if err := renderer.Submit(scale, offset); err != nil {
		return err
	}

	heartBeat := time.NewTicker(30 * time.Second)
	defer heartBeat.Stop()

	frames := 0
	startTime := time.Now()
	snapshotWanted := false
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_s:
					snapshotWanted = true
				case sdl.K_q, sdl.K_ESCAPE:
					running = false
				}
			}
		}

		select {
		case <-heartBeat.C:
			logger.Infof("Frames [Completed: %d] Scale: %g", frames, scale)
		default:
		}

		if renderer.AllDone() {
			// The raster is a coherent snapshot from here until Submit.
			if err := texture.Update(nil, unsafe.Pointer(&raster[0]), settings.Width*3); err != nil {
				return fmt.Errorf("unable to update texture - %s", err)
			}
			if snapshotWanted {
				snapshotWanted = false
				name, err := writeSnapshot(settings, raster)
				misc.CheckError(err, logger, misc.Error)
				if err == nil {
					logger.Infof("Saved snapshot %s", name)
				}
			}

			scale = scale / (1 + time.Since(startTime).Seconds()*settings.ZoomRate)
			if scale < settings.MinScale {
				scale = settings.MinScale
			}
			if err := renderer.Submit(scale, offset); err != nil {
				return err
			}
			frames++
		}

		if err := sdlRenderer.Copy(texture, nil, nil); err != nil {
			return fmt.Errorf("unable to copy texture - %s", err)
		}
		sdlRenderer.Present()
	}

	logger.Infof("Shutting down after %d frames", frames)
	return nil
}
