package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pursuit/internal/config"
	"pursuit/internal/ctxlog"
	"pursuit/internal/match"
)

func main() {
	var cfgPath, out string
	var seed int64
	var n, workers int
	var saveLog, verbose bool
	flag.StringVar(&cfgPath, "config", "", "match file (.yaml or .hcl); empty uses the built-in board")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 0, "seed override (0 keeps the config seed)")
	flag.IntVar(&n, "n", 0, "number of matches (0 keeps the config runs)")
	flag.IntVar(&workers, "workers", 0, "batch workers (0 keeps the config workers)")
	flag.BoolVar(&saveLog, "log", true, "save the full event log when n==1")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cfg := config.DefaultMatch()
	if cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(cfgPath); err != nil {
			logger.Error("cannot load match file", "err", err)
			os.Exit(1)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if n > 0 {
		cfg.Runs = n
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	var body []byte
	if cfg.Runs <= 1 {
		res := match.Run(ctx, cfg, cfg.Seed, saveLog)
		body = match.MarshalPretty(res)
		fmt.Printf("Single match finished. Captured=%v, rounds=%d -> %s\n", res.Captured, res.Rounds, out)
	} else {
		st := match.RunBatch(ctx, cfg, cfg.Runs, cfg.Workers)
		body = match.MarshalPretty(st)
		fmt.Printf("Batch %d done, capture rate %.2f -> %s\n", st.Runs, st.CaptureRate, filepath.Base(out))
	}
	if err := os.WriteFile(out, body, 0644); err != nil {
		logger.Error("cannot write output", "path", out, "err", err)
		os.Exit(1)
	}
}
