package sat

// DratEventKind distinguishes a clause addition from a clause deletion in a
// captured DRAT trace.
type DratEventKind uint8

const (
	DratAdd DratEventKind = iota
	DratDelete
)

// DratEvent is one captured addition or deletion of a learnt or unit
// clause, in the order the solver performed it.
type DratEvent struct {
	Kind     DratEventKind
	Literals []Literal
}

// DratRecorder accumulates DRAT events in memory while the solver runs. It
// is conceptually a write-only, append-only log: Events consumes it once.
// When disabled, Capture is a no-op and Events reports nothing captured.
type DratRecorder struct {
	enabled bool
	events  []DratEvent
}

// NewDratRecorder returns a recorder that only accumulates events when
// enabled is true.
func NewDratRecorder(enabled bool) *DratRecorder {
	return &DratRecorder{enabled: enabled}
}

// Capture records a clause addition (isDelete false) or deletion (true). The
// literal slice is copied since callers may reuse or mutate it afterwards.
func (r *DratRecorder) Capture(lits []Literal, isDelete bool) {
	if !r.enabled {
		return
	}
	cp := append([]Literal(nil), lits...)
	kind := DratAdd
	if isDelete {
		kind = DratDelete
	}
	r.events = append(r.events, DratEvent{Kind: kind, Literals: cp})
}

// Events returns the captured trace and true if recording was enabled, or
// (nil, false) otherwise.
func (r *DratRecorder) Events() ([]DratEvent, bool) {
	if !r.enabled {
		return nil, false
	}
	return r.events, true
}
