package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// node is one frontier entry. Entries are never updated in place; a better
// cost for the same cell produces a new node and the old one goes stale.
type node struct {
	cell   gridgraph.Cell
	parent gridgraph.Cell
	g, h   float64
	f      float64
	seq    int // insertion order, last tie-break
}

// frontier is the open set.
type frontier interface {
	Len() int
	push(n *node)
	pop() *node
}

func newFrontier(kind Frontier, capacity int) frontier {
	if kind == FrontierLinearScan {
		return &scanFrontier{items: make([]*node, 0, capacity)}
	}
	return &heapFrontier{pq: make(nodePQ, 0, capacity)}
}

// nodePQ is a min-heap of *node ordered by f, then h, then seq.
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less prefers lower f; equal f prefers the entry closer to the goal, then the older one.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

type heapFrontier struct {
	pq nodePQ
}

func (h *heapFrontier) Len() int { return h.pq.Len() }
func (h *heapFrontier) push(n *node) { heap.Push(&h.pq, n) }
func (h *heapFrontier) pop() *node { return heap.Pop(&h.pq).(*node) }

// scanFrontier selects the first entry with strictly lowest f and removes it
// by moving the last entry into its slot.
type scanFrontier struct {
	items []*node
}

func (s *scanFrontier) Len() int { return len(s.items) }
func (s *scanFrontier) push(n *node) { s.items = append(s.items, n) }

func (s *scanFrontier) pop() *node {
	least, at := math.Inf(1), 0
	for i, n := range s.items {
		if n.f < least {
			least, at = n.f, i
		}
	}
	n := s.items[at]
	last := len(s.items) - 1
	s.items[at] = s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]

	return n
}
