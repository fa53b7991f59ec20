// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heaps

import "github.com/emirpasic/gods/trees/binaryheap"

// godsHeap wraps the gods array-backed binary heap.
type godsHeap struct {
	h *binaryheap.Heap
}

func newGods() (Heap, error) {
	return &godsHeap{h: binaryheap.NewWithIntComparator()}, nil
}

func (g *godsHeap) Insert(v int) { g.h.Push(v) }

func (g *godsHeap) ExtractMin() (int, bool) {
	v, ok := g.h.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (g *godsHeap) Len() int { return g.h.Size() }
