package sat

import "testing"

func TestHeapOrder_PopMaxOrdersByScoreDescending(t *testing.T) {
	h := newHeapOrder()
	for v := 0; v < 3; v++ {
		h.addVar(v, 0)
	}
	h.setIfPresent(0, 1.0)
	h.setIfPresent(1, 3.0)
	h.setIfPresent(2, 2.0)

	undef := map[int]bool{0: true, 1: true, 2: true}
	isUndef := func(v int) bool { return undef[v] }

	order := []int{}
	for len(undef) > 0 {
		v := h.popMax(isUndef)
		order = append(order, v)
		delete(undef, v)
	}

	want := []int{1, 2, 0}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("pop order = %v, want %v", order, want)
		}
	}
}

func TestHeapOrder_PopMaxSkipsAssignedEntries(t *testing.T) {
	h := newHeapOrder()
	h.addVar(0, 5.0)
	h.addVar(1, 1.0)

	// Variable 0 is assigned but still sits in the heap with the top score,
	// so popMax must pop and discard it before returning variable 1.
	assigned := map[int]bool{0: true}
	isUndef := func(v int) bool { return !assigned[v] }

	if got := h.popMax(isUndef); got != 1 {
		t.Fatalf("popMax() = %d, want 1 (skipping assigned var 0)", got)
	}
}

func TestHeapOrder_ReinsertMakesVarSelectableAgain(t *testing.T) {
	h := newHeapOrder()
	h.addVar(0, 1.0)
	h.addVar(1, 1.0)

	undef := map[int]bool{0: true, 1: true}
	isUndef := func(v int) bool { return undef[v] }

	first := h.popMax(isUndef)
	delete(undef, first)

	h.reinsert(first, 100.0)
	undef[first] = true

	if got := h.popMax(isUndef); got != first {
		t.Fatalf("popMax() after reinsert = %d, want %d (boosted score)", got, first)
	}
}
