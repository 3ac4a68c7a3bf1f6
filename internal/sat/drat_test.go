package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDratRecorder_Disabled(t *testing.T) {
	r := NewDratRecorder(false)
	r.Capture([]Literal{PositiveLiteral(0)}, false)

	events, ok := r.Events()
	if ok {
		t.Fatalf("Events() ok = true, want false when disabled")
	}
	if events != nil {
		t.Errorf("Events() = %v, want nil when disabled", events)
	}
}

func TestDratRecorder_CapturesAddAndDeleteInOrder(t *testing.T) {
	r := NewDratRecorder(true)
	r.Capture([]Literal{PositiveLiteral(0), NegativeLiteral(1)}, false)
	r.Capture([]Literal{PositiveLiteral(0)}, true)
	r.Capture(nil, false) // the empty clause, captured on UNSAT

	events, ok := r.Events()
	if !ok {
		t.Fatalf("Events() ok = false, want true when enabled")
	}
	want := []DratEvent{
		{Kind: DratAdd, Literals: []Literal{PositiveLiteral(0), NegativeLiteral(1)}},
		{Kind: DratDelete, Literals: []Literal{PositiveLiteral(0)}},
		{Kind: DratAdd, Literals: []Literal{}},
	}
	if diff := cmp.Diff(want, events, cmp.Comparer(func(a, b []Literal) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})); diff != "" {
		t.Errorf("Events() mismatch (-want +got):\n%s", diff)
	}
}

func TestDratRecorder_CaptureCopiesLiterals(t *testing.T) {
	r := NewDratRecorder(true)
	lits := []Literal{PositiveLiteral(0)}
	r.Capture(lits, false)
	lits[0] = NegativeLiteral(5)

	events, _ := r.Events()
	if events[0].Literals[0] != PositiveLiteral(0) {
		t.Errorf("Capture() aliased the caller's slice: got %v", events[0].Literals[0])
	}
}
