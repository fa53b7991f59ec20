// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heaps

import (
	goheap "github.com/theodesp/go-heaps"
	"github.com/theodesp/go-heaps/fibonacci"
	"github.com/theodesp/go-heaps/leftist"
	"github.com/theodesp/go-heaps/pairing"
	"github.com/theodesp/go-heaps/skew"
)

// itemHeap is the subset of the go-heaps interface the adapters use.
// The pairing, skew, leftist, and Fibonacci heaps all satisfy it.
type itemHeap interface {
	Insert(v goheap.Item) goheap.Item
	DeleteMin() goheap.Item
}

// goHeap adapts one of the go-heaps item heaps. DeleteMin on an empty
// heap is not well defined across the implementations, so the adapter
// tracks the size itself.
type goHeap struct {
	h itemHeap
	n int
}

func newPairing() (Heap, error)   { return &goHeap{h: pairing.New()}, nil }
func newLeftist() (Heap, error)   { return &goHeap{h: leftist.New()}, nil }
func newFibonacci() (Heap, error) { return &goHeap{h: fibonacci.New()}, nil }

// skew.New seeds the root with a sentinel node holding a nil item,
// which makes the first Insert panic inside merge. The zero value is
// the usable empty heap.
func newSkew() (Heap, error) { return &goHeap{h: &skew.SkewHeap{}}, nil }

func (g *goHeap) Insert(v int) {
	g.h.Insert(goheap.Integer(v))
	g.n++
}

func (g *goHeap) ExtractMin() (int, bool) {
	if g.n == 0 {
		return 0, false
	}
	v := g.h.DeleteMin()
	g.n--
	return int(v.(goheap.Integer)), true
}

func (g *goHeap) Len() int { return g.n }
