package sat

// VarManager tracks per-variable assignment state (value, decision level,
// reason clause) together with whichever branching heuristic drives
// decisions. VSIDSManager and LRBManager are the two interchangeable
// implementations; the search driver is written against this interface and
// never branches on which one is active.
type VarManager interface {
	NewVar()
	NumVars() int

	Value(v int) LBool
	ValueOfLit(l Literal) LBool
	GetLevel(v int) int
	GetReason(v int) ClauseRef
	Model() []bool

	// Update records that v has been assigned value at the given decision
	// level for the given reason (NoReason for decisions and level-0 facts).
	// Passing Undef unassigns v (LRB also folds the finished assignment into
	// v's EMA), but does not return v to the pool of selectable variables or
	// save its phase; Reset does that.
	Update(v int, value LBool, level int, reason ClauseRef)
	Reset(v int)

	SelectVar() int

	// AfterLearntClause is called once a new learnt clause's literals are
	// finalized, before it is inserted into the clause database.
	AfterLearntClause(ps []Literal)
	// AfterRecordLearntClause is called once per learnt clause recorded,
	// after insertion.
	AfterRecordLearntClause()
	// AfterConflictAnalysis reports the variables whose reasons conflict
	// analysis walked through (participating) and the variables that
	// appeared in the reasons of the learnt clause's literals without being
	// part of the learnt clause itself (reasoned).
	AfterConflictAnalysis(participating, reasoned []int)
}

// varState is the assignment bookkeeping shared by both heuristics: current
// value, decision level, and reason clause per variable. Its exported
// methods are promoted to VSIDSManager and LRBManager through embedding,
// satisfying the read-only half of the VarManager interface identically for
// both variants.
type varState struct {
	assigns []LBool
	level   []int
	reason  []ClauseRef
}

func (s *varState) newVar() {
	s.assigns = append(s.assigns, Undef)
	s.level = append(s.level, -1)
	s.reason = append(s.reason, NoReason)
}

// NumVars returns the number of variables tracked.
func (s *varState) NumVars() int {
	return len(s.assigns)
}

// Value returns the current assignment of variable v.
func (s *varState) Value(v int) LBool {
	return s.assigns[v]
}

// ValueOfLit returns the current assignment of literal l, accounting for
// its sign.
func (s *varState) ValueOfLit(l Literal) LBool {
	if l.IsPositive() {
		return s.assigns[l.VarID()]
	}
	return s.assigns[l.VarID()].Opposite()
}

// GetLevel returns the decision level at which v was assigned, or -1 if it
// is unassigned.
func (s *varState) GetLevel(v int) int {
	return s.level[v]
}

// GetReason returns the clause that forced v's assignment, or NoReason for
// a decision, an assumption, or an unassigned variable.
func (s *varState) GetReason(v int) ClauseRef {
	return s.reason[v]
}

// Model returns the final assignment as a bool vector. Every variable must
// be assigned; callers should only invoke this once the search has reported
// a model.
func (s *varState) Model() []bool {
	model := make([]bool, len(s.assigns))
	for v, a := range s.assigns {
		if a == Undef {
			panic("cdclsat: model requested with an unassigned variable")
		}
		model[v] = a == True
	}
	return model
}

func (s *varState) setAssign(v int, value LBool, level int, reason ClauseRef) {
	s.assigns[v] = value
	s.level[v] = level
	s.reason[v] = reason
}
