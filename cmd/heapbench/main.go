// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Heapbench times third-party heap implementations against each other.
//
// Usage:
//
//	heapbench [-n size] [-trials count] [-heaps list] [-order asc|desc|rand|all]
//	          [-seed seed] [-dist normal|none] [-confidence level]
//	          [-csv] [-html] [-gobench] [-list]
//
// For every selected heap, heapbench runs the configured number of
// timed trials. A trial constructs a fresh heap, inserts every value
// of the workload, and then extracts the minimum until the heap is
// empty; the elapsed time covers the combined insert and extract
// phase. All heaps see the identical workload, and shuffled workloads
// come from a fixed seed, so runs are repeatable.
//
// The report shows one row per heap with the summary statistic of its
// trials, the spread of the statistic's confidence interval, and a
// comparison against the fastest heap. Under the default -dist normal
// assumption the summary is the mean and comparisons use Welch's
// t-test; -dist none switches to the median and the Mann-Whitney
// U-test. A difference that is not significant at alpha 0.05 is shown
// as a single ~.
//
// A heap that cannot be constructed or that fails every trial is
// excluded from the report with a warning on standard error; the
// remaining heaps still run. heapbench exits non-zero if no heap was
// runnable or if the run parameters are invalid.
//
// The -order flag selects the workload arrangement. Presorted inputs
// are worth measuring separately because some heap implementations
// degrade on them; -order all runs ascending, descending, and
// shuffled workloads and prints one table per arrangement.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/heapbench/heapbench/bench"
	"github.com/heapbench/heapbench/benchmath"
	"github.com/heapbench/heapbench/heaps"
	"github.com/heapbench/heapbench/report"
	"github.com/heapbench/heapbench/workload"
)

var exit = os.Exit // replaced during testing

// errUsage reports a command line the flag package itself accepts but
// heapbench does not.
var errUsage = errors.New("usage error")

var distNames = map[string]benchmath.Assumption{
	"normal": benchmath.AssumeNormal,
	"none":   benchmath.AssumeNothing,
}

func main() {
	log.SetPrefix("heapbench: ")
	log.SetFlags(0)

	err := heapbench(os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		exit(2)
	case errors.Is(err, bench.ErrConfig):
		log.Print(err)
		exit(2)
	default:
		log.Print(err)
		exit(1)
	}
}

// heapbench runs the whole benchmark: flag parsing, measurement, and
// report formatting. It is separate from main so tests can drive it
// with an argument vector and capture both output streams.
func heapbench(w, werr io.Writer, args []string) error {
	fs := flag.NewFlagSet("heapbench", flag.ContinueOnError)
	fs.SetOutput(werr)
	var (
		flagN          = fs.Int("n", 1000, "insert and extract `count` values per trial")
		flagTrials     = fs.Int("trials", 10, "timed `trials` per heap")
		flagHeaps      = fs.String("heaps", "", "comma-separated `subset` of heaps to run (default all)")
		flagOrder      = fs.String("order", "rand", "workload `order`: asc, desc, rand, or all")
		flagSeed       = fs.Int64("seed", 1, "random `seed` for shuffled workloads")
		flagConfidence = fs.Float64("confidence", 0.95, "confidence `level` for summary intervals")
		flagDist       = fs.String("dist", "normal", "distributional `assumption`: normal (mean) or none (median)")
		flagCSV        = fs.Bool("csv", false, "print results in CSV form")
		flagHTML       = fs.Bool("html", false, "print results as an HTML table")
		flagGoBench    = fs.Bool("gobench", false, "print raw trials in Go benchmark format")
		flagList       = fs.Bool("list", false, "list available heaps and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(werr, "usage: heapbench [options]\n")
		fmt.Fprintf(werr, "options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errUsage
	}

	if *flagList {
		for _, c := range heaps.All() {
			fmt.Fprintf(w, "%-10s %s\n", c.Name, c.Impl)
		}
		return nil
	}

	dist, ok := distNames[*flagDist]
	if !ok {
		return fmt.Errorf("%w: unknown assumption %q", bench.ErrConfig, *flagDist)
	}
	if !(*flagConfidence > 0 && *flagConfidence < 1) {
		return fmt.Errorf("%w: confidence %v not in (0, 1)", bench.ErrConfig, *flagConfidence)
	}

	cands := heaps.All()
	if *flagHeaps != "" {
		var err error
		cands, err = heaps.Select(strings.Split(*flagHeaps, ","))
		if err != nil {
			return fmt.Errorf("%w: %v", bench.ErrConfig, err)
		}
	}

	var orders []workload.Order
	if *flagOrder == "all" {
		orders = []workload.Order{workload.Ascending, workload.Descending, workload.Shuffled}
	} else {
		order, err := workload.ParseOrder(*flagOrder)
		if err != nil {
			return fmt.Errorf("%w: %v", bench.ErrConfig, err)
		}
		orders = []workload.Order{order}
	}

	lg := log.New(werr, "heapbench: ", 0)
	var all []*bench.Result
	var buf bytes.Buffer
	for i, order := range orders {
		cfg := &bench.Config{
			Size:       *flagN,
			Trials:     *flagTrials,
			Order:      order,
			Seed:       *flagSeed,
			Candidates: cands,
		}
		results, err := bench.Run(cfg, lg)
		if err != nil {
			return err
		}
		all = append(all, results...)

		if *flagGoBench {
			continue // formatted once, after all orders ran
		}
		tab := report.New(results, dist, *flagConfidence)
		switch {
		case *flagCSV:
			if err := report.FormatCSV(&buf, tab, i == 0); err != nil {
				return err
			}
		case *flagHTML:
			report.FormatHTML(&buf, tab)
		default:
			if i > 0 {
				buf.WriteByte('\n')
			}
			report.FormatText(&buf, tab)
		}
	}

	if *flagGoBench {
		return report.FormatGoBench(w, all)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
