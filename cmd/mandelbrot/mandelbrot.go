package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wineuwu/programming-rust-practice/pkg/imageio"
	"github.com/wineuwu/programming-rust-practice/pkg/pair"
	"github.com/wineuwu/programming-rust-practice/pkg/render"
	"github.com/wineuwu/programming-rust-practice/pkg/viewport"
	"log/slog"
	"os"
	"runtime"
	"time"
)

const (
	flagWorkers = "workers"
	flagVerbose = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mandelbrot FILE PIXELS UPPERLEFT LOWERRIGHT",
		Short:   "Render a region of the Mandelbrot set as a grayscale image",
		Example: "  mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20",
		Args:    cobra.ExactArgs(4),
		RunE:    runCmd,
	}

	addFlags(cmd.Flags())

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	// Flags end at FILE, so corner points like -1.20,0.35 are not read as shorthands.
	flags.SetInterspersed(false)

	flags.IntP(flagWorkers, "w", runtime.NumCPU(), "number of goroutines to render rows on; 1 renders sequentially")
	flags.BoolP(flagVerbose, "v", false, "log debug output")
}

type args struct {
	file     string
	bounds   viewport.Bounds
	viewport viewport.Viewport
}

func parseArgs(raw []string) (args, error) {
	bounds, err := pair.ParseBounds(raw[1])
	if err != nil {
		return args{}, err
	}

	upperLeft, err := pair.ParseComplex(raw[2])
	if err != nil {
		return args{}, err
	}

	lowerRight, err := pair.ParseComplex(raw[3])
	if err != nil {
		return args{}, err
	}

	return args{
		file:   raw[0],
		bounds: bounds,
		viewport: viewport.Viewport{
			UpperLeft:  upperLeft,
			LowerRight: lowerRight,
		},
	}, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	verbose, err := cmd.Flags().GetBool(flagVerbose)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func runCmd(cmd *cobra.Command, raw []string) error {
	a, err := parseArgs(raw)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	workers, err := cmd.Flags().GetInt(flagWorkers)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	render.SetLogger(log)
	defer render.SetLogger(nil)

	log.Debug("arguments",
		slog.String("file", a.file),
		slog.Int("width", a.bounds.Width),
		slog.Int("height", a.bounds.Height),
		slog.Any("upper_left", a.viewport.UpperLeft),
		slog.Any("lower_right", a.viewport.LowerRight))

	start := time.Now()

	pixels := make([]uint8, a.bounds.Len())
	r := render.Renderer{Workers: workers}
	err = r.Render(cmd.Context(), pixels, a.bounds, a.viewport)
	if err != nil {
		return err
	}

	err = imageio.WriteImage(a.file, pixels, a.bounds)
	if err != nil {
		return err
	}

	log.Info("wrote image",
		slog.String("file", a.file),
		slog.String("format", imageio.FormatFor(a.file).String()),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
