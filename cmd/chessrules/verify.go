package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func runVerify(args []string, stdout, stderr io.Writer) int {
	fs, cf := newFlagSet("verify", stderr)
	workers := fs.Int("j", 0, "Scenarios replayed at once (0 = one per CPU)")
	jsonOutput := fs.Bool("json", false, "Write the report as JSON")
	failFast := fs.Bool("fail-fast", false, "Stop after the first failing scenario")
	tags := fs.String("tags", "", "Only run scenarios carrying one of these comma-separated tags")
	maxPly := fs.Int("maxply", 0, "Reject scenarios longer than N plies (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "verify: no scenario files given")
		return 2
	}

	cfg, closeLog, err := cf.loadConfig(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer closeLog()

	b := config.From(cfg)
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "j":
			b.WithWorkers(*workers)
		case "json":
			if *jsonOutput {
				b.WithReportFormat(config.JSONReport)
			}
		case "fail-fast":
			b.WithFailFast(*failFast)
		case "tags":
			b.WithTags(splitTags(*tags)...)
		}
	})
	cfg = b.Build()
	if *maxPly > 0 {
		cfg.Verify.MaxPlies = *maxPly
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var suite []scenario.Scenario
	for _, path := range fs.Args() {
		loaded, err := scenario.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		cfg.Logf(2, "loaded %d scenarios from %s\n", len(loaded), path)
		suite = append(suite, loaded...)
	}
	suite = scenario.Select(suite, cfg.Verify.Tags)

	n := cfg.Verify.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}

	opts := scenario.Options{MaxPlies: cfg.Verify.MaxPlies}
	if cfg.Verbosity >= 2 {
		opts.Trace = func(sc *scenario.Scenario, ply game.Ply) {
			cfg.Logf(2, "%s: %s\n", sc.Name, ply)
		}
	}

	start := time.Now()
	results := worker.RunAll(suite, n, cfg.Verify.FailFast, opts)

	rw := output.NewReportWriter(cfg.OutputFile, cfg.Display.Format, cfg.Verbosity)
	failed := 0
	for _, res := range results {
		if !res.Passed() {
			failed++
		}
		if err := rw.WriteResult(res.Result); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}
	if err := rw.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg.Logf(1, "replayed %d of %d scenarios on %d workers in %s\n",
		len(results), len(suite), n, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		return 1
	}
	return 0
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
