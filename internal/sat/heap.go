package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// heapOrder is a shared priority-order helper backing both branching
// heuristics. It stores -score in a binary heap (yagh.IntMap is a min-heap)
// so that Pop always yields the variable with the highest score, breaking
// ties by insertion order as yagh's heap does internally.
type heapOrder struct {
	heap *yagh.IntMap[float64]
}

func newHeapOrder() *heapOrder {
	return &heapOrder{heap: yagh.New[float64](0)}
}

// addVar registers a freshly created variable with the given initial score.
func (h *heapOrder) addVar(varID int, score float64) {
	h.heap.GrowBy(1)
	h.heap.Put(varID, -score)
}

// setIfPresent updates v's priority only if v currently participates in
// selection (i.e. is not the variable of an assigned literal that has
// already been popped out of the heap).
func (h *heapOrder) setIfPresent(varID int, score float64) {
	if h.heap.Contains(varID) {
		h.heap.Put(varID, -score)
	}
}

// reinsert unconditionally (re-)inserts v with the given score. Used when v
// becomes unassigned and must rejoin the pool of selectable variables.
func (h *heapOrder) reinsert(varID int, score float64) {
	h.heap.Put(varID, -score)
}

// popMax repeatedly pops the heap until it finds a variable that is still
// unassigned according to isUndef, which it returns. Popped-but-assigned
// entries are discarded; they rejoin the heap only via reinsert.
func (h *heapOrder) popMax(isUndef func(v int) bool) int {
	for {
		next, ok := h.heap.Pop()
		if !ok {
			log.Fatal("cdclsat: variable selection requested from an empty order")
		}
		if isUndef(next.Elem) {
			return next.Elem
		}
	}
}
