// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"runtime"

	"github.com/heapbench/heapbench/bench"
)

// FormatGoBench writes one line per trial in the Go benchmark text
// format (https://golang.org/design/14313-benchmark-format), so raw
// measurements can be archived or fed to benchstat. The file
// configuration block is written once, before the first result.
func FormatGoBench(w io.Writer, results []*bench.Result) error {
	if len(results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "goos: %s\ngoarch: %s\npkg: github.com/heapbench/heapbench\n\n",
		runtime.GOOS, runtime.GOARCH); err != nil {
		return err
	}
	for _, res := range results {
		name := fmt.Sprintf("InsertExtract/heap=%s/order=%s/n=%d", res.Name, res.Order, res.N)
		for _, sec := range res.Sample.Values {
			// Each trial is a single iteration over the
			// whole workload.
			if _, err := fmt.Fprintf(w, "Benchmark%s 1 %.0f ns/op\n", name, sec*1e9); err != nil {
				return err
			}
		}
	}
	return nil
}
