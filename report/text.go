// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// FormatText appends a fixed-width text formatting of the table to
// buf. All rows share one duration scale, chosen from the smallest
// summary so every row keeps at least three significant digits.
func FormatText(buf *bytes.Buffer, t *Table) {
	fmt.Fprintf(buf, "order=%s n=%d\n", t.Order, t.N)

	rows := [][]string{{"heap", "sec/op", "vs fastest"}}
	scale := commonTimeScaler(t)
	for _, r := range t.Rows {
		cell := fmt.Sprintf("%s ±%3s", scale(r.Summary.Center), r.Summary.PctRangeString())
		note := r.Note
		if r.Failed > 0 {
			note += fmt.Sprintf(" [%d failed]", r.Failed)
		}
		rows = append(rows, []string{r.Name, cell, r.Delta + " " + note})
	}

	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	for _, row := range rows {
		for i, s := range row {
			switch i {
			case 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			case len(row) - 1:
				// Left-align the delta column and drop
				// trailing space.
				if s != " " {
					fmt.Fprintf(buf, "  %s", s)
				}
			default:
				fmt.Fprintf(buf, "  %*s", max[i], s)
			}
		}
		fmt.Fprintf(buf, "\n")
	}
}

// commonTimeScaler picks one formatting scale for every duration in
// the table, based on the smallest non-zero center.
func commonTimeScaler(t *Table) func(float64) string {
	var min float64
	for _, r := range t.Rows {
		c := r.Summary.Center
		if c > 0 && (min == 0 || c < min) {
			min = c
		}
	}
	return timeScaler(min)
}

// timeScaler returns a formatter for durations in seconds, scaled so
// that sec prints with at least three significant digits.
func timeScaler(sec float64) func(float64) string {
	var format string
	var scale float64
	switch x := sec; {
	case x >= 99.5:
		format, scale = "%.0fs", 1
	case x >= 9.95:
		format, scale = "%.1fs", 1
	case x >= 0.995:
		format, scale = "%.2fs", 1
	case x >= 0.0995:
		format, scale = "%.0fms", 1000
	case x >= 0.00995:
		format, scale = "%.1fms", 1000
	case x >= 0.000995:
		format, scale = "%.2fms", 1000
	case x >= 0.0000995:
		format, scale = "%.0fµs", 1000*1000
	case x >= 0.00000995:
		format, scale = "%.1fµs", 1000*1000
	case x >= 0.000000995:
		format, scale = "%.2fµs", 1000*1000
	case x >= 0.0000000995:
		format, scale = "%.0fns", 1000*1000*1000
	case x >= 0.00000000995:
		format, scale = "%.1fns", 1000*1000*1000
	default:
		format, scale = "%.2fns", 1000*1000*1000
	}
	return func(sec float64) string {
		return fmt.Sprintf(format, sec*scale)
	}
}
