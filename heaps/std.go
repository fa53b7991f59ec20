// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heaps

import "container/heap"

// intSlice implements heap.Interface over an int slice, the way
// container/heap is conventionally used for a min-heap of ints.
type intSlice []int

func (s intSlice) Len() int            { return len(s) }
func (s intSlice) Less(i, j int) bool  { return s[i] < s[j] }
func (s intSlice) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s *intSlice) Push(x interface{}) { *s = append(*s, x.(int)) }

func (s *intSlice) Pop() interface{} {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[:n-1]
	return x
}

// stdHeap is the standard library baseline candidate.
type stdHeap struct {
	s intSlice
}

func newStd() (Heap, error) { return new(stdHeap), nil }

func (h *stdHeap) Insert(v int) { heap.Push(&h.s, v) }

func (h *stdHeap) ExtractMin() (int, bool) {
	if len(h.s) == 0 {
		return 0, false
	}
	return heap.Pop(&h.s).(int), true
}

func (h *stdHeap) Len() int { return len(h.s) }
