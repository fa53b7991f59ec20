// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders benchmark results as fixed-width text, CSV,
// an HTML table, or the Go benchmark text format.
package report

import (
	"github.com/heapbench/heapbench/bench"
	"github.com/heapbench/heapbench/benchmath"
)

// A Table is the printable form of one run's results. Rows keep the
// candidate order of the run.
type Table struct {
	// Order and N identify the workload of this run.
	Order string
	N     int

	// Label is the summary statistic name, such as "mean".
	Label string

	Rows []*Row
}

// A Row summarizes one candidate.
type Row struct {
	Name    string
	Summary benchmath.Summary

	// Delta compares this row to the fastest row: a formatted
	// percent difference, "~" if not significant, or "" for the
	// fastest row itself.
	Delta string

	// Note carries the p-value and sample sizes backing Delta.
	Note string

	Trials int
	Failed int
}

// New builds a Table from one run's results. Each row's delta is
// computed against the row with the smallest center, using the given
// assumption's significance test at the given confidence level.
func New(results []*bench.Result, a benchmath.Assumption, confidence float64) *Table {
	t := &Table{Label: a.SummaryLabel()}
	if len(results) == 0 {
		return t
	}
	t.Order = results[0].Order.String()
	t.N = results[0].N

	fastest := 0
	for i, res := range results {
		row := &Row{
			Name:    res.Name,
			Summary: a.Summary(res.Sample, confidence),
			Trials:  res.Trials,
			Failed:  res.Failed,
		}
		t.Rows = append(t.Rows, row)
		if row.Summary.Center < t.Rows[fastest].Summary.Center {
			fastest = i
		}
	}

	base := results[fastest]
	for i, row := range t.Rows {
		if i == fastest {
			continue
		}
		cmp := a.Compare(base.Sample, results[i].Sample)
		row.Delta = cmp.FormatDelta(t.Rows[fastest].Summary.Center, row.Summary.Center)
		row.Note = "(" + cmp.String() + ")"
	}
	return t
}
