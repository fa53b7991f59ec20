// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workload generates the input sequences that are fed
// identically to every heap candidate in a run.
package workload

import (
	"fmt"
	"math/rand"
)

// An Order describes how workload values are arranged before
// insertion. Real inputs are often mostly sorted (a queue of similar
// deadlines, for example) and some heaps degrade on sorted input, so
// all three arrangements are worth measuring.
type Order int

const (
	Ascending  Order = iota // 0, 1, 2, ...
	Descending              // n-1, n-2, ...
	Shuffled                // a seeded random permutation
)

// String returns the short name used in flags and report rows.
func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	case Shuffled:
		return "rand"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder is the inverse of String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	case "rand":
		return Shuffled, nil
	}
	return 0, fmt.Errorf("unknown order %q", s)
}

// Generate returns the values 0 through n-1 arranged per order.
// Shuffled workloads are permuted with the given seed, so equal
// configurations always produce equal workloads. The harness treats
// the result as read-only.
func Generate(n int, order Order, seed int64) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	switch order {
	case Descending:
		for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
			vals[i], vals[j] = vals[j], vals[i]
		}
	case Shuffled:
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
	}
	return vals
}
