package sat

import "strings"

// Clause is an ordered sequence of literals. Positions 0 and 1 are the two
// watched literals and must satisfy the invariants of §4.3: whenever
// propagation is quiescent, each is either Undef, True, or (if False) no
// literal at position >= 2 is Undef or True.
type Clause struct {
	Literals []Literal

	// Activity is only meaningful for learnt clauses; it is bumped whenever
	// the clause participates in conflict analysis and decayed globally by
	// the clause database.
	Activity float64

	learnt  bool
	deleted bool
}

// Learnt reports whether the clause is a learnt (deletable) clause.
func (c *Clause) Learnt() bool {
	return c.learnt
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, l := range c.Literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// explainConflict returns the negation of every literal in the clause: the
// set of literals that, being all False, make the clause conflicting.
func (c *Clause) explainConflict(buf []Literal) []Literal {
	buf = buf[:0]
	for _, l := range c.Literals {
		buf = append(buf, l.Opposite())
	}
	return buf
}

// explainAssign returns the negation of every literal but the first: the
// reason the clause forced Literals[0] to be assigned.
func (c *Clause) explainAssign(buf []Literal) []Literal {
	buf = buf[:0]
	for _, l := range c.Literals[1:] {
		buf = append(buf, l.Opposite())
	}
	return buf
}
