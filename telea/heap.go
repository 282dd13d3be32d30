package telea

import "container/heap"

// bandEntry is one narrow-band candidate: arrival time plus coordinates.
// Ordering is (t, y, x) ascending so equal arrival times pop in a fixed
// raster order and two runs on the same input finalize pixels identically.
type bandEntry struct {
	t    float32
	y, x int
}

// bandHeap is a min-heap of band candidates. The same pixel may be pushed
// several times with decreasing arrival times; stale entries are discarded
// on pop by re-checking the flag field instead of maintaining an indexed
// decrease-key heap.
type bandHeap []bandEntry

func (h bandHeap) Len() int { return len(h) }

func (h bandHeap) Less(i, j int) bool {
	if h[i].t != h[j].t {
		return h[i].t < h[j].t
	}
	if h[i].y != h[j].y {
		return h[i].y < h[j].y
	}
	return h[i].x < h[j].x
}

func (h bandHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *bandHeap) Push(v any) { *h = append(*h, v.(bandEntry)) }

func (h *bandHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

func (h *bandHeap) push(e bandEntry) { heap.Push(h, e) }

func (h *bandHeap) pop() bandEntry { return heap.Pop(h).(bandEntry) }
