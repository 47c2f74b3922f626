package main

import (
	"context"
	"os"

	"github.com/redien/mandelbrot/viewer"
	"github.com/spf13/cobra"
)

var flags = struct {
	settingsFile   string
	width          int
	height         int
	workers        int
	centerX        float64
	centerY        float64
	scale          float64
	zoomRate       float64
	snapshotDir    string
	snapshotFormat string
}{}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Interactive Mandelbrot zoom demo",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().StringVar(&flags.settingsFile, "settings", "", "JSON settings file; flags override it")
	cmd.Flags().IntVar(&flags.width, "width", 0, "window width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 0, "window height in pixels")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "number of band workers; defaults to the CPU count")
	cmd.Flags().Float64Var(&flags.centerX, "center-x", 0, "real part of the zoom target")
	cmd.Flags().Float64Var(&flags.centerY, "center-y", 0, "imaginary part of the zoom target")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "starting viewport scale")
	cmd.Flags().Float64Var(&flags.zoomRate, "zoom-rate", 0, "zoom speed per elapsed second")
	cmd.Flags().StringVar(&flags.snapshotDir, "snapshot-dir", "", "folder for snapshots saved with the s key")
	cmd.Flags().StringVar(&flags.snapshotFormat, "snapshot-format", "", "snapshot format, png or bmp")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	settings, err := viewer.NewSettings(flags.settingsFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("width") {
		settings.Width = flags.width
	}
	if cmd.Flags().Changed("height") {
		settings.Height = flags.height
	}
	if cmd.Flags().Changed("workers") {
		settings.Workers = flags.workers
	}
	if cmd.Flags().Changed("center-x") {
		settings.CenterX = flags.centerX
	}
	if cmd.Flags().Changed("center-y") {
		settings.CenterY = flags.centerY
	}
	if cmd.Flags().Changed("scale") {
		settings.Scale = flags.scale
	}
	if cmd.Flags().Changed("zoom-rate") {
		settings.ZoomRate = flags.zoomRate
	}
	if cmd.Flags().Changed("snapshot-dir") {
		settings.SnapshotDir = flags.snapshotDir
	}
	if cmd.Flags().Changed("snapshot-format") {
		settings.SnapshotFormat = flags.snapshotFormat
	}
	if err := settings.Verify(); err != nil {
		return err
	}

	return viewer.Run(settings)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
