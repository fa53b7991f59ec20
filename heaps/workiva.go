// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heaps

import "github.com/Workiva/go-datastructures/queue"

// wqItem makes an int comparable under the Workiva queue.Item
// interface.
type wqItem int

func (a wqItem) Compare(other queue.Item) int {
	b := other.(wqItem)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// workivaHeap adapts the Workiva priority queue. Get blocks on an
// empty queue, so the adapter checks emptiness first.
type workivaHeap struct {
	q *queue.PriorityQueue
}

func newWorkiva() (Heap, error) {
	return &workivaHeap{q: queue.NewPriorityQueue(64, true)}, nil
}

func (w *workivaHeap) Insert(v int) {
	// Put fails only on a disposed queue, which the harness never
	// creates.
	_ = w.q.Put(wqItem(v))
}

func (w *workivaHeap) ExtractMin() (int, bool) {
	if w.q.Empty() {
		return 0, false
	}
	items, err := w.q.Get(1)
	if err != nil || len(items) == 0 {
		return 0, false
	}
	return int(items[0].(wqItem)), true
}

func (w *workivaHeap) Len() int { return w.q.Len() }
