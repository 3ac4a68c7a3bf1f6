package sat

// conflictAnalyzer holds the scratch state conflict analysis reuses across
// calls, so that a Solver need not reallocate buffers on every conflict.
type conflictAnalyzer struct {
	seen VarSet

	learnt []Literal // accumulated learnt clause literals
	reason []Literal // scratch buffer for a single clause's reason literals

	participating []int // variables whose reasons were explored this analysis
	reasoned      []int // variables that appear in a reason but not in learnt
}

func (a *conflictAnalyzer) grow() {
	a.seen.Grow()
}

// explain returns the reason literals for clause ref: if hasP is false (no
// assigning literal, i.e. ref is itself the conflict), every literal is a
// culprit; otherwise the literal ref assigned (position 0) is skipped;
// reasons are the negation of each remaining (False) literal.
// Using a learnt clause as a reason bumps its activity.
func (a *conflictAnalyzer) explain(db *ClauseDB, ref ClauseRef, hasP bool) []Literal {
	c, ok := db.Resolve(ref)
	if !ok {
		panic("cdclsat: conflict analysis lost a reason clause mid-walk")
	}
	db.BumpActivity(ref)
	if hasP {
		return c.explainAssign(a.reason)
	}
	return c.explainConflict(a.reason)
}

// analyze implements 1-UIP resolution (§4.5): starting from the conflicting
// clause, it walks the trail backwards, resolving away every literal at the
// current decision level until exactly one remains (the first unique
// implication point), accumulating the rest of the learnt clause's literals
// and the backjump level along the way. Every trail literal it passes over
// during that backward walk is popped and unassigned on the spot, not left
// for a later cancel: the reference behavior folds the top decision level's
// undo into analysis itself, and the driver's subsequent cancelUntil only
// has to finish off the levels below it. Before returning, it hands the
// variables that participated in or were reasons for the resolution to the
// variable manager via AfterConflictAnalysis, exactly where the reference
// implementation's analyze calls it, so VSIDS (which ignores the callback)
// and LRB (which uses it to update its per-variable EMA) stay uniform.
func (s *Solver) analyze(conflict ClauseRef) (learnt []Literal, btLevel int) {
	a := &s.analyzer
	a.seen.Clear()
	a.learnt = a.learnt[:0]
	a.learnt = append(a.learnt, placeholderLiteral)
	a.participating = a.participating[:0]
	a.reasoned = a.reasoned[:0]

	counter := 0
	level := s.trail.Level()
	ref := conflict
	var p Literal
	hasP := false

	for {
		for _, q := range a.explain(s.clauses, ref, hasP) {
			v := q.VarID()
			if a.seen.Contains(v) {
				continue
			}
			a.seen.Add(v)
			a.participating = append(a.participating, v)

			if s.vars.GetLevel(v) == level {
				counter++
				continue
			}
			if s.vars.GetLevel(v) > 0 {
				a.learnt = append(a.learnt, q.Opposite())
				if lv := s.vars.GetLevel(v); lv > btLevel {
					btLevel = lv
				}
			}
		}

		// Walk the trail backwards, popping and unassigning every literal in
		// turn, until one belonging to a seen variable turns up.
		var v int
		var reason ClauseRef
		for {
			p = s.trail.Pop()
			v = p.VarID()
			reason = s.vars.GetReason(v)
			s.vars.Reset(v)
			if a.seen.Contains(v) {
				break
			}
		}
		ref = reason
		hasP = true
		counter--
		if counter <= 0 {
			break
		}
	}

	a.learnt[0] = p.Opposite()

	// Heuristic feedback: "reasoned" variables are those appearing in the
	// reason clause of a learnt-clause literal without being part of the
	// learnt clause itself. This is computed independently of the seen set
	// above, which tracks a different notion (variables already resolved
	// away during the trail walk).
	inLearnt := make(map[int]bool, len(a.learnt))
	for _, lit := range a.learnt {
		inLearnt[lit.VarID()] = true
	}
	reasonedSet := make(map[int]bool)
	for _, lit := range a.learnt {
		r := s.vars.GetReason(lit.VarID())
		if r.IsNone() {
			continue
		}
		c, ok := s.clauses.Resolve(r)
		if !ok {
			continue
		}
		for _, l := range c.Literals {
			reasonedSet[l.VarID()] = true
		}
	}
	for v := range inLearnt {
		delete(reasonedSet, v)
	}
	for v := range reasonedSet {
		a.reasoned = append(a.reasoned, v)
	}

	s.vars.AfterConflictAnalysis(a.participating, a.reasoned)

	return a.learnt, btLevel
}

// placeholderLiteral reserves position 0 of the learnt clause buffer before
// the asserting literal is known; it is always overwritten before analyze
// returns.
const placeholderLiteral Literal = -1
