package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fluid-ca/internal/app"
	"fluid-ca/internal/sims/fluid"
)

func main() {
	steps := flag.Int("steps", 2000, "maximum ticks to simulate")
	every := flag.Int("every", 100, "log progress every N ticks (0 disables)")
	scene := flag.String("scene", "dam", "starting layout: "+strings.Join(fluid.Scenarios(), ", "))
	rainTicks := flag.Int("rain", 0, "ticks of rain before letting the grid settle")
	verbose := flag.Bool("v", false, "debug logging")
	opts := app.Options{}
	flag.Var(opts, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, opts, *scene, *steps, *every, *rainTicks); err != nil {
		logger.Error("settle failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, opts app.Options, scene string, steps, every, rainTicks int) error {
	cfg := fluid.FromMap(opts)
	f := fluid.NewWithConfig(cfg)
	if err := f.Load(scene); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	size := f.Size()
	initial := f.Grid().TotalWater()
	logger.Info("start",
		"scene", scene,
		"cols", size.W,
		"rows", size.H,
		"water", initial,
		"clamp_outflow", cfg.Params.ClampOutflow,
	)

	report := runSettle(f, steps, rainTicks, func(tick uint64, stats fluid.StepStats) {
		if every > 0 && tick%uint64(every) == 0 {
			logger.Info("progress", "tick", tick, "water", f.Grid().TotalWater(), "fell", stats.Fell, "spread", stats.Spread)
		}
		logger.Debug("tick", "tick", tick, "fell", stats.Fell, "spread", stats.Spread, "settled", stats.Settled)
	})

	if !report.Settled {
		logger.Warn("did not settle", "ticks", report.Ticks, "water", report.Final)
		return nil
	}
	logger.Info("settled",
		"ticks", report.Ticks,
		"water", report.Final,
		"rained", report.Rained,
		"lost", report.Lost,
	)
	return nil
}
