// Command sweep generates many seeds in parallel and reports which ones
// produce a world and how long generation takes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"frontier/internal/worldgen"
)

type outcome struct {
	seed    int64
	summary worldgen.Summary
	err     error
}

func (o outcome) String() string {
	if o.err != nil {
		return fmt.Sprintf("seed %-8d FAIL %v", o.seed, o.err)
	}
	s := o.summary
	return fmt.Sprintf("seed %-8d ok   railway=%d roads=%d caves=%d town_rounds=%d elapsed=%v",
		o.seed, s.RailwayLength, s.Roads, s.Caves, s.TownRounds, s.Elapsed.Round(time.Millisecond))
}

func main() {
	seeds := flag.Int("seeds", 16, "number of seeds to try")
	seedBase := flag.Int64("seed-base", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	preset := flag.String("preset", "small", "configuration preset ("+strings.Join(worldgen.Presets(), ", ")+")")
	var sets []string
	flag.Func("set", "override a parameter, key=value (repeatable)", func(v string) error {
		sets = append(sets, v)
		return nil
	})
	flag.Parse()

	base, err := worldgen.Preset(*preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, kv := range sets {
		key, value, _ := strings.Cut(kv, "=")
		if !base.Override(key, value) {
			fmt.Fprintf(os.Stderr, "cannot set %q\n", kv)
			os.Exit(2)
		}
	}
	if err := base.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %dx%d)\n", *seeds, *seedBase, *workers, base.Width, base.Height)

	start := time.Now()
	results, err := sweep(context.Background(), base, *seedBase, *seeds, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failures := make(map[string]int)
	var ok []outcome
	for _, r := range results {
		fmt.Println(r)
		if r.err != nil {
			failures[failureKind(r.err)]++
			continue
		}
		ok = append(ok, r)
	}

	fmt.Printf("\n%d/%d seeds generated in %v\n", len(ok), len(results), time.Since(start).Round(time.Millisecond))
	kinds := make([]string, 0, len(failures))
	for k := range failures {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-24s %d\n", k, failures[k])
	}
	if len(ok) > 0 {
		var total time.Duration
		longest := 0
		for _, r := range ok {
			total += r.summary.Elapsed
			longest = max(longest, r.summary.RailwayLength)
		}
		fmt.Printf("mean elapsed %v, longest railway %d\n", (total / time.Duration(len(ok))).Round(time.Millisecond), longest)
	}
}

// sweep generates seeds [first, first+n) with at most workers generations in
// flight. Generation failures are outcomes, not errors.
func sweep(ctx context.Context, base worldgen.Config, first int64, n, workers int) ([]outcome, error) {
	results := make([]outcome, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Seed = first + int64(i)
			res, err := worldgen.Generate(cfg, worldgen.WithLogger(quiet))
			results[i] = outcome{seed: cfg.Seed, err: err}
			if err == nil {
				results[i].summary = res.Summary
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func failureKind(err error) string {
	for _, sentinel := range []error{
		worldgen.ErrPlacementInfeasible,
		worldgen.ErrNoRoute,
		worldgen.ErrBrokenRailway,
		worldgen.ErrStationOffRailway,
		worldgen.ErrLayoutMismatch,
		worldgen.ErrInvalidConfig,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "other"
}
