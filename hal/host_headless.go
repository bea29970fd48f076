//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Log receives log lines; nil means stdout.
	Log io.Writer
	// Done, if set, is called with the framebuffer once the runner stops
	// without error.
	Done func(*Framebuffer) error
}

// RunHeadless steps the app at cfg.Hz against an in-memory panel until ctx
// ends, a step fails or cfg.Ticks steps have run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHost(cfg.Log)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: headless rate %d Hz too high", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var steps uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			steps++
			if cfg.Ticks > 0 && steps >= cfg.Ticks {
				if cfg.Done != nil {
					return cfg.Done(h.fb)
				}
				return nil
			}
		}
	}
}
