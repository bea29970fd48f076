//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"vnaplot/app"
	"vnaplot/app/sim"
	"vnaplot/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	acfg := app.DefaultConfig()
	var scenario string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&acfg.Points, "points", acfg.Points, "Sweep points.")
	flag.StringVar(&scenario, "scenario", acfg.Scenario.String(), "Simulated device: filter|open|constant.")
	flag.Float64Var(&acfg.Noise, "noise", acfg.Noise, "Measurement noise (standard deviation).")
	flag.DurationVar(&acfg.SweepPeriod, "sweep", acfg.SweepPeriod, "Time between sweeps (0 = one per frame).")
	flag.BoolVar(&acfg.CheckerBoard, "checker", false, "Shade alternate plot tiles.")
	flag.Parse()

	sc, err := sim.ParseScenario(scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	acfg.Scenario = sc
	acfg.Seed = time.Now().UnixNano()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
