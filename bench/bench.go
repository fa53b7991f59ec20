// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench drives timed insert/extract trials over heap
// candidates and folds the measurements into per-candidate results.
//
// Execution is a single sequential pass over candidates and trials:
// one trial runs to completion before the next begins, so candidates
// never interfere with each other's timing.
package bench

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/heapbench/heapbench/benchmath"
	"github.com/heapbench/heapbench/heaps"
	"github.com/heapbench/heapbench/workload"
)

var (
	// ErrConfig indicates invalid run parameters. It is the only
	// error that aborts a whole run.
	ErrConfig = errors.New("invalid configuration")

	// ErrNoCandidates indicates that every configured candidate
	// was unavailable or failed all of its trials.
	ErrNoCandidates = errors.New("no runnable heap candidates")
)

// A Config describes one benchmark run. The same workload is fed to
// every candidate.
type Config struct {
	// Size is the workload length. Zero is allowed and measures
	// an empty insert/extract pass.
	Size int

	// Trials is the number of timed trials per candidate.
	Trials int

	// Order is the arrangement of the workload values.
	Order workload.Order

	// Seed seeds shuffled workloads. Runs with equal Size, Order,
	// and Seed measure identical inputs.
	Seed int64

	// Candidates are the heaps to time, in report order.
	Candidates []heaps.Candidate
}

// Validate reports whether cfg describes a runnable benchmark.
func (cfg *Config) Validate() error {
	if cfg.Size < 0 {
		return fmt.Errorf("%w: size %d", ErrConfig, cfg.Size)
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("%w: trials %d", ErrConfig, cfg.Trials)
	}
	if len(cfg.Candidates) == 0 {
		return fmt.Errorf("%w: no candidates", ErrConfig)
	}
	return nil
}

// A Result records the statistics of one candidate's trials.
type Result struct {
	// Name is the candidate's name.
	Name string

	// Order and N identify the workload this result measured.
	Order workload.Order
	N     int

	// Sample holds the duration of each successful trial, in
	// seconds.
	Sample *benchmath.Sample

	// Trials and Failed count successful and failed trials.
	Trials int
	Failed int
}

// Run executes cfg: for every candidate, Trials timed passes that
// insert the whole workload and then extract the minimum until the
// heap is empty. Candidates that cannot be constructed or that fail
// every trial are skipped with a warning on lg; only configuration
// problems are fatal. Run returns ErrNoCandidates if nothing was
// runnable.
func Run(cfg *Config, lg *log.Logger) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vals := workload.Generate(cfg.Size, cfg.Order, cfg.Seed)

	var results []*Result
	for _, cand := range cfg.Candidates {
		res, err := runCandidate(cand, vals, cfg.Trials)
		if err != nil {
			lg.Printf("skipping %s: %v", cand.Name, err)
			continue
		}
		res.Order = cfg.Order
		res.N = cfg.Size
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, ErrNoCandidates
	}
	return results, nil
}

func runCandidate(cand heaps.Candidate, vals []int, trials int) (*Result, error) {
	// One untimed pass warms caches before measurement. A warm-up
	// failure is not disqualifying on its own; the candidate is
	// excluded only if every timed trial also fails.
	_, lastErr := trial(cand, vals)

	durs := make([]float64, 0, trials)
	var failed int
	for i := 0; i < trials; i++ {
		d, err := trial(cand, vals)
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		durs = append(durs, d.Seconds())
	}
	if len(durs) == 0 {
		return nil, fmt.Errorf("all %d trials failed: %v", trials, lastErr)
	}
	return &Result{
		Name:   cand.Name,
		Sample: benchmath.NewSample(durs, &benchmath.DefaultThresholds),
		Trials: len(durs),
		Failed: failed,
	}, nil
}

// trial times one full insert-all/extract-all pass on a fresh heap.
// The timed region covers only the heap operations; verification that
// the candidate returned every value in non-decreasing order happens
// afterward, so a misbehaving candidate becomes a trial error rather
// than a silently wrong measurement.
func trial(cand heaps.Candidate, vals []int) (d time.Duration, err error) {
	h, err := cand.New()
	if err != nil {
		return 0, fmt.Errorf("constructing heap: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			d, err = 0, fmt.Errorf("heap panicked: %v", p)
		}
	}()

	out := make([]int, 0, len(vals))
	start := time.Now()
	for _, v := range vals {
		h.Insert(v)
	}
	for i := 0; i < len(vals); i++ {
		v, ok := h.ExtractMin()
		if !ok {
			break
		}
		out = append(out, v)
	}
	d = time.Since(start)

	if len(out) != len(vals) {
		return 0, fmt.Errorf("extracted %d of %d values", len(out), len(vals))
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			return 0, fmt.Errorf("extraction %d out of order: %d after %d", i, out[i], out[i-1])
		}
	}
	if n := h.Len(); n != 0 {
		return 0, fmt.Errorf("%d values left after draining", n)
	}
	return d, nil
}
