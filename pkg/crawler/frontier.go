package crawler

import (
	"container/heap"

	"linkharvest/internal/models"
)

// Frontier holds pending crawl work and dictates visitation order. A URL
// may be pushed several times; the engine rejects already-visited URLs at
// pop time. Implementations are not safe for concurrent use — the engine
// owns its frontier on a single worker.
type Frontier interface {
	Push(item models.FrontierItem)
	Pop() (models.FrontierItem, bool)
	Len() int
}

// bestFirstFrontier pops the item with the lowest score first, insertion
// order breaking ties. With keywords supplied the scorer counts hits as
// "more relevant", so higher-relevance links actually pop later; without
// keywords the score is the URL length and the shortest URL wins. That
// ordering is part of the contract and must not be flipped to highest-first.
type bestFirstFrontier struct {
	items itemHeap
	seq   int
}

// NewBestFirstFrontier returns the priority frontier used by best-first
// traversal.
func NewBestFirstFrontier() Frontier {
	return &bestFirstFrontier{}
}

func (f *bestFirstFrontier) Push(item models.FrontierItem) {
	f.seq++
	heap.Push(&f.items, heapItem{FrontierItem: item, seq: f.seq})
}

func (f *bestFirstFrontier) Pop() (models.FrontierItem, bool) {
	if f.items.Len() == 0 {
		return models.FrontierItem{}, false
	}
	it := heap.Pop(&f.items).(heapItem)
	return it.FrontierItem, true
}

func (f *bestFirstFrontier) Len() int {
	return f.items.Len()
}

type heapItem struct {
	models.FrontierItem
	seq int
}

type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// depthFirstFrontier expands the most recently discovered item first.
// Scores are ignored.
type depthFirstFrontier struct {
	items []models.FrontierItem
}

// NewDepthFirstFrontier returns the LIFO frontier used by depth-first
// traversal.
func NewDepthFirstFrontier() Frontier {
	return &depthFirstFrontier{}
}

func (f *depthFirstFrontier) Push(item models.FrontierItem) {
	f.items = append(f.items, item)
}

func (f *depthFirstFrontier) Pop() (models.FrontierItem, bool) {
	if len(f.items) == 0 {
		return models.FrontierItem{}, false
	}
	it := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return it, true
}

func (f *depthFirstFrontier) Len() int {
	return len(f.items)
}
