// Command plotshot renders the analyzer screen without a window and writes
// it as a BMP image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"vnaplot/app"
	"vnaplot/app/sim"
	"vnaplot/hal"

	"golang.org/x/image/bmp"
)

func main() {
	var (
		outPath  = flag.String("out", "", "Output BMP file.")
		points   = flag.Int("points", 101, "Sweep points.")
		scenario = flag.String("scenario", "filter", "filter|open|constant.")
		checker  = flag.Bool("checker", false, "Shade alternate plot tiles.")
		noise    = flag.Float64("noise", 0, "Measurement noise (standard deviation).")
		seed     = flag.Int64("seed", 1, "Noise seed.")
		frames   = flag.Int("frames", 2, "Frames to render before the snapshot.")
		verbose  = flag.Bool("v", false, "Print log lines to stderr.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: plotshot -out screen.bmp [-points 101] [-scenario filter|open|constant] [-checker]")
	}
	sc, err := sim.ParseScenario(*scenario)
	if err != nil {
		fatalf("%v", err)
	}

	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	img, err := render(logOut, app.Config{
		Points:       *points,
		Scenario:     sc,
		Noise:        *noise,
		Seed:         *seed,
		CheckerBoard: *checker,
	}, *frames)
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := writeBMP(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// render runs the analyzer for the given number of frames, measuring one
// sweep per frame, and returns the final screen.
func render(log io.Writer, cfg app.Config, frames int) (*image.RGBA, error) {
	if frames < 1 {
		return nil, fmt.Errorf("frames out of range: %d", frames)
	}
	cfg.SweepPeriod = 0
	cfg.StatusEvery = 0

	h, fb := hal.NewHost(log)
	step := app.NewWithConfig(h, cfg)
	for i := 0; i < frames; i++ {
		if err := step(); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return fb.Image(), nil
}

func writeBMP(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(out, 64*1024)
	if err := bmp.Encode(bw, img); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
