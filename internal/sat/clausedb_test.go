package sat

import "testing"

// fakeReasons is a minimal reasonProvider for exercising ClauseDB.Reduce
// without a full VarManager.
type fakeReasons map[int]ClauseRef

func (f fakeReasons) GetReason(v int) ClauseRef {
	return f[v]
}

func TestClauseDB_AddAndResolve(t *testing.T) {
	db := NewClauseDB(1, 0.999)

	origRef, origC := db.AddOriginal([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	if db.NumOriginals() != 1 {
		t.Fatalf("NumOriginals() = %d, want 1", db.NumOriginals())
	}
	got, ok := db.Resolve(origRef)
	if !ok || got != origC {
		t.Fatalf("Resolve(origRef) = (%v, %v), want (%v, true)", got, ok, origC)
	}

	learntRef, learntC := db.AddLearnt([]Literal{PositiveLiteral(2), PositiveLiteral(3)})
	if db.NumLearnts() != 1 {
		t.Fatalf("NumLearnts() = %d, want 1", db.NumLearnts())
	}
	if learntC.Activity != 1 {
		t.Errorf("new learnt clause Activity = %v, want 1 (bumped once on insertion)", learntC.Activity)
	}
	if !learntC.Learnt() {
		t.Errorf("AddLearnt() clause reports Learnt() = false")
	}

	if _, ok := db.Resolve(NoReason); ok {
		t.Errorf("Resolve(NoReason) = ok, want not ok")
	}
	_ = learntRef
}

func TestClauseDB_BumpActivityRescales(t *testing.T) {
	db := NewClauseDB(6e99, 0.999)
	ref, c := db.AddLearnt([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	// AddLearnt already bumped once, putting Activity at 6e99. One more bump
	// brings it to 1.2e100, crossing the 1e100 threshold and triggering a
	// rescale.
	db.BumpActivity(ref)

	if c.Activity >= 1e100 {
		t.Errorf("Activity = %v, want rescaled below 1e100", c.Activity)
	}
}

func TestClauseDB_ReduceKeepsLockedClauses(t *testing.T) {
	db := NewClauseDB(1, 0.999)
	watches := NewWatchIndex()
	for i := 0; i < 4; i++ {
		watches.Grow()
	}
	drat := NewDratRecorder(false)

	lockedRef, lockedC := db.AddLearnt([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	unlockedRef, unlockedC := db.AddLearnt([]Literal{PositiveLiteral(2), PositiveLiteral(3)})
	midRef, midC := db.AddLearnt([]Literal{PositiveLiteral(0), PositiveLiteral(2)})
	highRef, highC := db.AddLearnt([]Literal{PositiveLiteral(1), PositiveLiteral(3)})
	for _, e := range []struct {
		ref ClauseRef
		c   *Clause
	}{{lockedRef, lockedC}, {unlockedRef, unlockedC}, {midRef, midC}, {highRef, highC}} {
		watches.add(e.c.Literals[0].Opposite(), e.ref)
		watches.add(e.c.Literals[1].Opposite(), e.ref)
	}

	// lockedRef and unlockedRef tie for the lowest activity and both fall in
	// the half Reduce considers for removal; midRef and highRef are bumped
	// clear of that half.
	db.BumpActivity(midRef)
	db.BumpActivity(highRef)
	db.BumpActivity(highRef)
	reasons := fakeReasons{0: lockedRef}

	db.Reduce(reasons, watches, drat)

	if _, ok := db.Resolve(lockedRef); !ok {
		t.Errorf("locked clause (reason(var(lits[0]))=self) was removed by Reduce")
	}
	if _, ok := db.Resolve(unlockedRef); ok {
		t.Errorf("unlocked low-activity clause survived Reduce")
	}
	if _, ok := db.Resolve(midRef); !ok {
		t.Errorf("mid-activity clause was unexpectedly removed by Reduce")
	}
	if _, ok := db.Resolve(highRef); !ok {
		t.Errorf("high-activity clause was unexpectedly removed by Reduce")
	}
}

func TestClauseDB_RemoveLearntUnwatchesAndCapturesDRAT(t *testing.T) {
	db := NewClauseDB(1, 0.999)
	watches := NewWatchIndex()
	for i := 0; i < 2; i++ {
		watches.Grow()
	}
	drat := NewDratRecorder(true)

	ref, c := db.AddLearnt([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	watches.add(c.Literals[0].Opposite(), ref)
	watches.add(c.Literals[1].Opposite(), ref)

	db.RemoveLearnt(ref, watches, drat)

	if _, ok := db.Resolve(ref); ok {
		t.Errorf("Resolve(ref) after RemoveLearnt = ok, want stale")
	}
	if len(watches.list(c.Literals[0].Opposite())) != 0 {
		t.Errorf("watch list for literal 0 not cleared after removal")
	}
	events, _ := drat.Events()
	if len(events) != 1 || events[0].Kind != DratDelete {
		t.Errorf("drat events = %+v, want a single delete event", events)
	}
}
