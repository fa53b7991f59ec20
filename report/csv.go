// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV writes the table in CSV form. Durations are unscaled
// seconds so the output is fit for machine consumption. The header
// row is written only when header is set, so several tables can share
// one stream.
func FormatCSV(w io.Writer, t *Table, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"heap", "order", "n", "trials", "failed",
			t.Label + "-sec", "lo-sec", "hi-sec", "vs-fastest"}); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		rec := []string{
			r.Name,
			t.Order,
			strconv.Itoa(t.N),
			strconv.Itoa(r.Trials),
			strconv.Itoa(r.Failed),
			strconv.FormatFloat(r.Summary.Center, 'g', -1, 64),
			strconv.FormatFloat(r.Summary.Lo, 'g', -1, 64),
			strconv.FormatFloat(r.Summary.Hi, 'g', -1, 64),
			r.Delta,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
