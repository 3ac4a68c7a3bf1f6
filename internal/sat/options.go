package sat

import "time"

// HeuristicKind selects which branching heuristic a Solver's variable
// manager uses.
type HeuristicKind int

const (
	HeuristicVSIDS HeuristicKind = iota
	HeuristicLRB
)

// Options configures a new Solver.
type Options struct {
	// ClauseInc and ClauseDecay govern clause activity: ClauseInc is the
	// initial bump increment, ClauseDecay is the MiniSAT-style decay factor
	// in (0, 1) applied to future increments after each recorded clause.
	ClauseInc   float64
	ClauseDecay float64

	// Heuristic selects VSIDS or LRB. VarInc and VarDecay only apply to
	// VSIDS.
	Heuristic HeuristicKind
	VarInc    float64
	VarDecay  float64

	// PhaseSaving, when true and Heuristic is VSIDS, makes decisions reuse
	// a variable's last assigned sign instead of always deciding positive.
	PhaseSaving bool

	// CaptureDRAT enables the in-memory DRAT event recorder.
	CaptureDRAT bool

	// MaxConflicts and Timeout are optional stop conditions checked between
	// restarts; negative values disable the corresponding condition. They
	// are an allowed extension beyond the reference search loop, which runs
	// to completion.
	MaxConflicts int64
	Timeout      time.Duration
}

// DefaultOptions mirrors the reference solver's defaults: VSIDS branching,
// MiniSAT-standard decay rates, no DRAT capture, no stop conditions.
var DefaultOptions = Options{
	ClauseInc:    1,
	ClauseDecay:  0.999,
	Heuristic:    HeuristicVSIDS,
	VarInc:       1,
	VarDecay:     0.95,
	MaxConflicts: -1,
	Timeout:      -1,
}
