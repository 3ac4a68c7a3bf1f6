package sat

import (
	"sort"
	"time"
)

// Stats reports search progress counters, useful for diagnostics or a
// verbose CLI mode; it has no bearing on solving itself.
type Stats struct {
	Decisions    int64
	Conflicts    int64
	Propagations int64
	Restarts     int64
}

// Solver is a CDCL SAT solver: a clause database with watched literals, a
// pluggable variable manager (VSIDS or LRB), a trail, and a conflict
// analyzer, driven by the restart loop in Solve.
type Solver struct {
	clauses  *ClauseDB
	watches  *WatchIndex
	vars     VarManager
	trail    *Trail
	analyzer conflictAnalyzer
	queue    *Deque[Literal]
	drat     *DratRecorder

	opts      Options
	rootLevel int
	unsat     bool
	deadline  time.Time

	stats Stats
}

// NewSolver returns an empty solver configured by opts.
func NewSolver(opts Options) *Solver {
	var vars VarManager
	switch opts.Heuristic {
	case HeuristicLRB:
		vars = NewLRBManager()
	default:
		vars = NewVSIDSManager(opts.VarInc, opts.VarDecay, opts.PhaseSaving)
	}
	return &Solver{
		clauses: NewClauseDB(opts.ClauseInc, opts.ClauseDecay),
		watches: NewWatchIndex(),
		vars:    vars,
		trail:   &Trail{},
		queue:   NewDeque[Literal](16),
		drat:    NewDratRecorder(opts.CaptureDRAT),
		opts:    opts,
	}
}

// NumVars returns the number of variables known to the solver.
func (s *Solver) NumVars() int {
	return s.vars.NumVars()
}

// NumClauses returns the number of original (non-learnt) clauses.
func (s *Solver) NumClauses() int {
	return s.clauses.NumOriginals()
}

// Stats returns a snapshot of the solver's search counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// DratEvents returns the captured DRAT trace, or (nil, false) if the solver
// was not configured to capture one.
func (s *Solver) DratEvents() ([]DratEvent, bool) {
	return s.drat.Events()
}

// NewVar adds a fresh, unassigned variable and returns its id.
func (s *Solver) NewVar() int {
	s.watches.Grow()
	s.analyzer.grow()
	s.vars.NewVar()
	return s.vars.NumVars() - 1
}

// NewVars adds n fresh variables and returns their ids.
func (s *Solver) NewVars(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = s.NewVar()
	}
	return ids
}

// AddClause adds an original clause to the formula. Adding a clause that is
// already violated by a previously added unit clause makes the solver
// permanently unsatisfiable; subsequent calls to Solve report that directly
// without running search.
func (s *Solver) AddClause(lits []Literal) {
	cp := append([]Literal(nil), lits...)
	if _, ok := s.clauseNew(cp, false); !ok {
		s.unsat = true
	}
}

// clauseNew normalizes and installs a new clause. For original clauses it
// removes duplicate and permanently-false literals, discards tautologies and
// already-satisfied clauses, and detects the empty clause. Learnt clauses
// are assumed already free of duplicates and tautologies by construction of
// 1-UIP resolution, so only their second watch is chosen: the literal with
// the highest decision level, so the clause re-triggers propagation as soon
// as possible once the driver backtracks past it. ok is false only when the
// clause renders the formula unsatisfiable.
func (s *Solver) clauseNew(lits []Literal, learnt bool) (ClauseRef, bool) {
	if !learnt {
		for _, l := range lits {
			if s.vars.ValueOfLit(l) == True {
				return NoReason, true
			}
		}

		sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
		out := lits[:0]
		prev := Literal(-1)
		for _, l := range lits {
			if l == prev {
				continue
			}
			if l.Opposite() == prev {
				return NoReason, true // tautology
			}
			prev = l
			if s.vars.ValueOfLit(l) == False {
				continue // permanently false, drop
			}
			out = append(out, l)
		}
		lits = out
	}

	switch len(lits) {
	case 0:
		return NoReason, false
	case 1:
		return NoReason, s.enqueue(lits[0], NoReason)
	}

	if learnt {
		maxIdx := 1
		for i := 2; i < len(lits); i++ {
			if s.vars.GetLevel(lits[i].VarID()) > s.vars.GetLevel(lits[maxIdx].VarID()) {
				maxIdx = i
			}
		}
		lits[1], lits[maxIdx] = lits[maxIdx], lits[1]

		s.vars.AfterLearntClause(lits)
		ref, c := s.clauses.AddLearnt(lits)
		s.watches.add(c.Literals[0].Opposite(), ref)
		s.watches.add(c.Literals[1].Opposite(), ref)
		return ref, true
	}

	ref, c := s.clauses.AddOriginal(lits)
	s.watches.add(c.Literals[0].Opposite(), ref)
	s.watches.add(c.Literals[1].Opposite(), ref)
	return ref, true
}

// enqueue assigns literal l true for the given reason (NoReason for a
// decision, an assumption, or a root-level fact). If l is already assigned,
// it reports whether the existing assignment agrees; otherwise it always
// succeeds.
func (s *Solver) enqueue(l Literal, reason ClauseRef) bool {
	if val := s.vars.ValueOfLit(l); val != Undef {
		return val != False
	}
	s.vars.Update(l.VarID(), LiftBool(l.IsPositive()), s.trail.Level(), reason)
	s.trail.Push(l)
	s.queue.PushBack(l)
	s.stats.Propagations++
	return true
}

// propagate drains the propagation queue via the two-watched-literal
// scheme (§4.4): each literal popped has just been assigned true, so the
// clauses in its watch list, which watch its complement, see that watch
// become false. A conflicting clause's reference is
// returned; NoReason means the queue emptied without one.
func (s *Solver) propagate() ClauseRef {
	for s.queue.Len() > 0 {
		p := s.queue.PopBack()
		snapshot := append([]ClauseRef(nil), s.watches.list(p)...)
		s.watches.clear(p)

		for i := 0; i < len(snapshot); i++ {
			ref := snapshot[i]
			c, ok := s.clauses.Resolve(ref)
			if !ok {
				continue // stale reference to a since-deleted learnt clause
			}

			if c.Literals[0] == p.Opposite() {
				c.Literals[0], c.Literals[1] = c.Literals[1], c.Literals[0]
			}

			if s.vars.ValueOfLit(c.Literals[0]) == True {
				s.watches.add(p, ref)
				continue
			}

			moved := false
			for j := 2; j < len(c.Literals); j++ {
				if s.vars.ValueOfLit(c.Literals[j]) != False {
					c.Literals[1], c.Literals[j] = c.Literals[j], c.Literals[1]
					s.watches.add(c.Literals[1].Opposite(), ref)
					moved = true
					break
				}
			}
			if moved {
				continue
			}

			s.watches.add(p, ref)
			if s.vars.ValueOfLit(c.Literals[0]) == False {
				s.watches.addAll(p, snapshot[i+1:])
				s.queue.Clear()
				return ref
			}
			if !s.enqueue(c.Literals[0], ref) {
				s.watches.addAll(p, snapshot[i+1:])
				s.queue.Clear()
				return ref
			}
		}
	}
	return NoReason
}

// record installs a clause learnt by analyze and enqueues its asserting
// literal. The driver must already have backjumped to the clause's backtrack
// level before calling this.
func (s *Solver) record(learnt []Literal) {
	s.drat.Capture(learnt, false)
	asserting := learnt[0]
	ref, _ := s.clauseNew(learnt, true)
	s.enqueue(asserting, ref)
}

// assume opens a new decision level and enqueues p as a decision (or, at the
// root, an assumption).
func (s *Solver) assume(p Literal) bool {
	s.trail.NewLevel()
	return s.enqueue(p, NoReason)
}

// cancel undoes every literal assigned at the current decision level and
// closes it.
func (s *Solver) cancel() {
	n := s.trail.Len() - s.trail.PopLevel()
	for ; n > 0; n-- {
		s.vars.Reset(s.trail.Pop().VarID())
	}
}

// cancelUntil backjumps to the given decision level, inclusive of undoing
// everything above it, and discards any now-stale pending propagations.
func (s *Solver) cancelUntil(level int) {
	for s.trail.Level() > level {
		s.cancel()
	}
	s.queue.Clear()
}

func (s *Solver) decisionLevel() int {
	return s.trail.Level()
}

// reduceDB halves the learnt clause database, keeping locked and
// high-activity clauses (§4.3).
func (s *Solver) reduceDB() {
	s.clauses.Reduce(s.vars, s.watches, s.drat)
}

// simplifyDB drops any learnt clause satisfied at the root level and
// compacts the rest, dropping literals that are permanently false. Only
// meaningful (and only called) at decision level 0.
func (s *Solver) simplifyDB() {
	if s.propagate() != NoReason {
		return
	}
	for _, ref := range s.clauses.LearntRefs() {
		if s.clauseSimplify(ref) {
			s.clauses.RemoveLearnt(ref, s.watches, s.drat)
		}
	}
}

// clauseSimplify reports whether the clause ref names is satisfied at the
// root level, compacting away its permanently-false literals in place as it
// goes.
func (s *Solver) clauseSimplify(ref ClauseRef) bool {
	c, ok := s.clauses.Resolve(ref)
	if !ok {
		return false
	}
	j := 0
	for _, l := range c.Literals {
		switch s.vars.ValueOfLit(l) {
		case True:
			return true
		case Undef:
			c.Literals[j] = l
			j++
		}
	}
	c.Literals = c.Literals[:j]
	return false
}

// search runs propagate/analyze/decide until either a model is found, the
// formula is proven unsatisfiable, or nofConflicts conflicts accumulate
// (requesting a restart). It returns the result status and, on a model, the
// satisfying assignment.
func (s *Solver) search(nofConflicts, nofLearnts int64) (LBool, []bool) {
	var conflictCount int64

	for {
		if s.shouldStop() {
			s.cancelUntil(s.rootLevel)
			return Undef, nil
		}

		if conflict := s.propagate(); conflict != NoReason {
			conflictCount++
			s.stats.Conflicts++

			if s.decisionLevel() == s.rootLevel {
				return False, nil
			}

			learnt, backtrackLevel := s.analyze(conflict)
			if backtrackLevel < s.rootLevel {
				backtrackLevel = s.rootLevel
			}
			s.cancelUntil(backtrackLevel)
			s.record(learnt)
			s.vars.AfterRecordLearntClause()
			s.clauses.Decay()
			continue
		}

		if s.decisionLevel() == 0 {
			s.simplifyDB()
		}

		if int64(s.clauses.NumLearnts())-int64(s.trail.Len()) >= nofLearnts {
			s.reduceDB()
		}

		if s.trail.Len() == s.vars.NumVars() {
			return True, s.vars.Model()
		}
		if conflictCount >= nofConflicts {
			s.stats.Restarts++
			s.cancelUntil(s.rootLevel)
			return Undef, nil
		}

		v := s.vars.SelectVar()
		s.stats.Decisions++
		s.assume(s.decisionLiteral(v))
	}
}

// phaseSaver is implemented by variable managers whose decision literal
// reuses a previously saved sign instead of always defaulting to positive.
type phaseSaver interface {
	DecisionPhase(v int) LBool
}

func (s *Solver) decisionLiteral(v int) Literal {
	if ps, ok := s.vars.(phaseSaver); ok && ps.DecisionPhase(v) == False {
		return NegativeLiteral(v)
	}
	return PositiveLiteral(v)
}

// shouldStop reports whether an optional, reference-exceeding stop condition
// (MaxConflicts or Timeout) has been reached.
func (s *Solver) shouldStop() bool {
	if s.opts.MaxConflicts >= 0 && s.stats.Conflicts >= s.opts.MaxConflicts {
		return true
	}
	if s.opts.Timeout >= 0 && !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// Solve searches for a satisfying assignment under the given assumption
// literals (nil or empty for none), following the geometric restart
// schedule of §4.7: conflicts-to-next-restart doubles, and the learnt clause
// budget grows by a factor of 1.1 after each restart. It returns True with
// a model, False for unsatisfiable, or Undef if a configured stop condition
// (MaxConflicts or Timeout) was reached before either could be determined.
// Proving unsatisfiability appends the empty clause to the DRAT trace, if
// one is being captured.
func (s *Solver) Solve(assumptions []Literal) (LBool, []bool) {
	status, model := s.solve(assumptions)
	if status == False {
		s.drat.Capture(nil, false)
	}
	return status, model
}

func (s *Solver) solve(assumptions []Literal) (LBool, []bool) {
	if s.unsat {
		return False, nil
	}
	if s.opts.Timeout >= 0 {
		s.deadline = time.Now().Add(s.opts.Timeout)
	}

	const restartFirst = 100.0
	const restartInc = 2.0
	nofLearnts := float64(s.clauses.NumOriginals()) / 3.0
	status := Undef

	for _, a := range assumptions {
		if !s.assume(a) || s.propagate() != NoReason {
			s.cancelUntil(0)
			return False, nil
		}
	}
	s.rootLevel = s.decisionLevel()

	var model []bool
	restarts := 0
	for status == Undef {
		restBase := 1.0
		for i := 0; i < restarts; i++ {
			restBase *= restartInc
		}
		nofConflicts := int64(restBase * restartFirst)
		status, model = s.search(nofConflicts, int64(nofLearnts))
		if status == Undef && s.shouldStop() {
			break
		}
		nofLearnts *= 1.1
		restarts++
	}

	s.cancelUntil(0)
	if status == True {
		return True, model
	}
	return status, nil
}
