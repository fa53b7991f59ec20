// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heaps adapts third-party heap implementations to a common
// minimal interface so they can be benchmarked against each other.
//
// Each candidate wraps one external library. The harness depends only
// on Insert, ExtractMin, and Len; all ordering semantics come from the
// underlying library.
package heaps

import (
	"errors"
	"fmt"
)

// A Heap is the capability set the harness requires of a candidate:
// insert a value, extract the minimum, and report size.
type Heap interface {
	// Insert adds v to the heap.
	Insert(v int)

	// ExtractMin removes and returns the smallest value in the
	// heap. It reports false if the heap is empty.
	ExtractMin() (int, bool)

	// Len returns the number of values currently in the heap.
	Len() int
}

// A Candidate names one heap implementation under test and knows how
// to construct a fresh instance of it. Candidates are immutable.
type Candidate struct {
	// Name is the short identifier used in flags and reports.
	Name string

	// Impl describes the underlying implementation.
	Impl string

	// New constructs an empty heap. It returns an error if the
	// underlying library cannot be initialized; such a candidate
	// is unavailable and is skipped rather than failing the run.
	New func() (Heap, error)
}

var registry = []Candidate{
	{"std", "container/heap (stdlib binary heap)", newStd},
	{"gods", "emirpasic/gods binary heap", newGods},
	{"pairing", "theodesp/go-heaps pairing heap", newPairing},
	{"skew", "theodesp/go-heaps skew heap", newSkew},
	{"leftist", "theodesp/go-heaps leftist heap", newLeftist},
	{"fibonacci", "theodesp/go-heaps Fibonacci heap", newFibonacci},
	{"workiva", "Workiva/go-datastructures priority queue", newWorkiva},
}

// All returns every built-in candidate in registration order.
// The caller owns the returned slice.
func All() []Candidate {
	return append([]Candidate(nil), registry...)
}

// ErrUnknown indicates a name that matches no built-in candidate.
var ErrUnknown = errors.New("unknown heap")

// Select resolves names to built-in candidates, preserving the order
// of names. It fails on the first unknown name.
func Select(names []string) ([]Candidate, error) {
	var cands []Candidate
	for _, name := range names {
		found := false
		for _, c := range registry {
			if c.Name == name {
				cands = append(cands, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w %q", ErrUnknown, name)
		}
	}
	return cands, nil
}
