package sat

// refKind distinguishes original (permanent) clauses from learnt
// (deletable) ones. The zero value, refNone, denotes "no reason" (a
// decision or a level-0 fact).
type refKind uint8

const (
	refNone refKind = iota
	refOriginal
	refLearnt
)

// ClauseRef is a tagged, stable handle to a clause. Original clauses are
// addressed by their index into the original slice, which never shrinks.
// Learnt clauses are addressed by a monotonic id resolved through a map, so
// that a handle kept by a watch list or a variable's reason field can detect
// that the clause it once pointed to has since been deleted by reduce_db or
// simplify_db.
type ClauseRef struct {
	kind refKind
	id   uint64
}

// NoReason is the handle used for decisions and level-0 facts.
var NoReason = ClauseRef{}

// IsNone reports whether the reference denotes "no clause".
func (r ClauseRef) IsNone() bool {
	return r.kind == refNone
}

// Equal reports whether two references denote the same clause slot. It does
// not resolve either reference, so it is safe to call after one side has
// been deleted.
func (r ClauseRef) Equal(other ClauseRef) bool {
	return r.kind == other.kind && r.id == other.id
}
