package sat

// VSIDSManager implements VarManager with the classic Variable State
// Independent Decaying Sum heuristic: every variable appearing in a newly
// learnt clause has its activity bumped; the increment itself grows after
// each recorded clause so that recent conflicts dominate selection without
// having to touch every variable's score.
type VSIDSManager struct {
	varState

	order       *heapOrder
	scores      []float64
	varInc      float64
	varDecayInv float64 // 1 / varDecay, applied to varInc after each record

	phases      []LBool
	phaseSaving bool
}

// NewVSIDSManager returns a VSIDS variable manager. varInc is the initial
// activity increment, varDecay is in (0, 1) (activity growth rate between
// conflicts). When phaseSaving is enabled, a variable's decision literal
// reuses the sign it last held rather than always defaulting to positive.
func NewVSIDSManager(varInc, varDecay float64, phaseSaving bool) *VSIDSManager {
	return &VSIDSManager{
		order:       newHeapOrder(),
		varInc:      varInc,
		varDecayInv: 1.0 / varDecay,
		phaseSaving: phaseSaving,
	}
}

func (m *VSIDSManager) NewVar() {
	m.varState.newVar()
	v := len(m.scores)
	m.scores = append(m.scores, 0)
	m.phases = append(m.phases, Undef)
	m.order.addVar(v, 0)
}

func (m *VSIDSManager) Update(v int, value LBool, level int, reason ClauseRef) {
	m.setAssign(v, value, level, reason)
}

func (m *VSIDSManager) Reset(v int) {
	val := m.assigns[v]
	m.setAssign(v, Undef, -1, NoReason)
	if m.phaseSaving && val != Undef {
		m.phases[v] = val
	}
	m.order.reinsert(v, m.scores[v])
}

func (m *VSIDSManager) SelectVar() int {
	return m.order.popMax(func(v int) bool { return m.assigns[v] == Undef })
}

// DecisionPhase returns the sign the next decision on v should take: the
// saved phase if phase saving is enabled and v has been assigned before,
// positive otherwise. The search driver always asks for the positive phase
// when phase saving is off, matching the reference behavior.
func (m *VSIDSManager) DecisionPhase(v int) LBool {
	if m.phaseSaving && m.phases[v] != Undef {
		return m.phases[v]
	}
	return True
}

func (m *VSIDSManager) AfterLearntClause(ps []Literal) {
	for _, p := range ps {
		m.bump(p.VarID())
	}
}

func (m *VSIDSManager) bump(v int) {
	m.scores[v] += m.varInc
	if m.scores[v] > 1e100 {
		m.rescale()
	}
	m.order.setIfPresent(v, m.scores[v])
}

func (m *VSIDSManager) rescale() {
	m.varInc *= 1e-100
	for v := range m.scores {
		m.scores[v] *= 1e-100
		m.order.setIfPresent(v, m.scores[v])
	}
}

func (m *VSIDSManager) AfterRecordLearntClause() {
	m.varInc *= m.varDecayInv
}

func (m *VSIDSManager) AfterConflictAnalysis(participating, reasoned []int) {
	// VSIDS derives all its feedback from AfterLearntClause; conflict
	// analysis participation does not feed back into activity.
}
