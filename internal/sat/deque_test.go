package sat

import "testing"

func TestDeque_PushPopIsLIFO(t *testing.T) {
	d := NewDeque[int](2)
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	if got, want := d.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for _, want := range []int{3, 2, 1} {
		if got := d.PopBack(); got != want {
			t.Fatalf("PopBack() = %d, want %d", got, want)
		}
	}
	if got := d.Len(); got != 0 {
		t.Errorf("Len() after draining = %d, want 0", got)
	}
}

func TestDeque_GrowsPastInitialCapacity(t *testing.T) {
	d := NewDeque[int](1)
	const n = 50
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	if got := d.Len(); got != n {
		t.Fatalf("Len() = %d, want %d", got, n)
	}
	for i := n - 1; i >= 0; i-- {
		if got := d.PopBack(); got != i {
			t.Fatalf("PopBack() = %d, want %d", got, i)
		}
	}
}

func TestDeque_WrapsAroundRingEndThenGrows(t *testing.T) {
	// With only PushBack/PopBack in play, pushing past the physical end of
	// the ring wraps `end` back to 0 without losing logical order; pushing
	// further still must grow correctly from that wrapped state.
	d := NewDeque[int](4)
	for i := 0; i < 4; i++ {
		d.PushBack(i)
	}
	d.PopBack()
	d.PopBack()
	d.PushBack(4) // end wraps from 2 to 3, then to 0 on the next push
	d.PushBack(5) // size == capacity again
	d.PushBack(6) // the ring is full, so this push must grow

	want := []int{6, 5, 4, 1, 0}
	for _, w := range want {
		if got := d.PopBack(); got != w {
			t.Fatalf("PopBack() = %d, want %d", got, w)
		}
	}
}

func TestDeque_Clear(t *testing.T) {
	d := NewDeque[int](4)
	d.PushBack(1)
	d.PushBack(2)
	d.Clear()
	if got := d.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	d.PushBack(9)
	if got := d.PopBack(); got != 9 {
		t.Errorf("PopBack() after Clear+Push = %d, want 9", got)
	}
}
