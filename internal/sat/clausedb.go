package sat

import "sort"

// ClauseDB owns every clause in the formula: the original clauses, which are
// permanent, and the learnt clauses, which are created by record and deleted
// by reduce or simplify. Learnt clauses are stored in a map keyed by a
// monotonic id so that references held elsewhere (watch lists, the variable
// manager's reason field) remain stable across deletions and can detect a
// stale lookup.
type ClauseDB struct {
	originals []*Clause

	learnts map[uint64]*Clause
	nextID  uint64

	claInc   float64
	claDecay float64 // 1 / the configured decay, applied to claInc after each record
}

// NewClauseDB returns an empty clause database with the given activity
// increment and decay (decay is the MiniSAT-style decay factor in (0, 1);
// internally claInc is divided by it after each learnt clause is recorded).
func NewClauseDB(claInc, claDecay float64) *ClauseDB {
	return &ClauseDB{
		learnts:  make(map[uint64]*Clause),
		claInc:   claInc,
		claDecay: 1.0 / claDecay,
	}
}

// NumOriginals returns the number of original clauses.
func (db *ClauseDB) NumOriginals() int {
	return len(db.originals)
}

// NumLearnts returns the number of learnt clauses currently retained.
func (db *ClauseDB) NumLearnts() int {
	return len(db.learnts)
}

// AddOriginal stores a permanent clause and returns its reference. lits must
// have at least two literals; the caller installs the watches.
func (db *ClauseDB) AddOriginal(lits []Literal) (ClauseRef, *Clause) {
	c := &Clause{Literals: append([]Literal(nil), lits...)}
	idx := len(db.originals)
	db.originals = append(db.originals, c)
	return ClauseRef{kind: refOriginal, id: uint64(idx)}, c
}

// AddLearnt stores a new learnt clause, initializes its activity to zero and
// immediately bumps it (it is about to serve as a reason), and returns its
// reference.
func (db *ClauseDB) AddLearnt(lits []Literal) (ClauseRef, *Clause) {
	c := &Clause{Literals: append([]Literal(nil), lits...), learnt: true}
	id := db.nextID
	db.nextID++
	db.learnts[id] = c
	ref := ClauseRef{kind: refLearnt, id: id}
	db.BumpActivity(ref)
	return ref, c
}

// Resolve returns the clause a reference points to. ok is false if ref is
// NoReason or if the clause it named has since been deleted.
func (db *ClauseDB) Resolve(ref ClauseRef) (*Clause, bool) {
	switch ref.kind {
	case refOriginal:
		return db.originals[ref.id], true
	case refLearnt:
		c, ok := db.learnts[ref.id]
		return c, ok
	default:
		return nil, false
	}
}

// BumpActivity increases a learnt clause's activity by claInc, rescaling all
// learnt activities (and claInc) if it would overflow towards infinity.
// Bumping an original clause's reference, or a stale one, is a no-op.
func (db *ClauseDB) BumpActivity(ref ClauseRef) {
	if ref.kind != refLearnt {
		return
	}
	c, ok := db.learnts[ref.id]
	if !ok {
		return
	}
	c.Activity += db.claInc
	if c.Activity > 1e100 {
		db.claInc *= 1e-100
		for _, l := range db.learnts {
			l.Activity *= 1e-100
		}
	}
}

// Decay shrinks the relative weight of past activity bumps by growing the
// increment applied to future ones. Called once per recorded learnt clause.
func (db *ClauseDB) Decay() {
	db.claInc *= db.claDecay
}

// reasonProvider is the part of VarManager that clause reduction needs to
// determine whether a learnt clause is locked.
type reasonProvider interface {
	GetReason(v int) ClauseRef
}

func (db *ClauseDB) locked(ref ClauseRef, c *Clause, vars reasonProvider) bool {
	return vars.GetReason(c.Literals[0].VarID()).Equal(ref)
}

// Reduce halves the learnt clause database, removing unlocked clauses with
// the lowest activity first, then removes any further unlocked clause whose
// activity falls below claInc / |learnts|. Deletion unlinks the clause from
// the watch lists of the negations of its two watched literals and emits a
// DRAT delete event.
func (db *ClauseDB) Reduce(vars reasonProvider, watches *WatchIndex, drat *DratRecorder) {
	if len(db.learnts) == 0 {
		return
	}

	type entry struct {
		ref ClauseRef
		c   *Clause
	}
	entries := make([]entry, 0, len(db.learnts))
	for id, c := range db.learnts {
		entries = append(entries, entry{ClauseRef{kind: refLearnt, id: id}, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].c.Activity < entries[j].c.Activity
	})

	lim := db.claInc / float64(len(entries))

	half := len(entries) / 2
	i := 0
	for ; i < half; i++ {
		e := entries[i]
		if !db.locked(e.ref, e.c, vars) {
			db.removeLearnt(e.ref, e.c, watches, drat)
		}
	}
	for ; i < len(entries); i++ {
		e := entries[i]
		if !db.locked(e.ref, e.c, vars) && e.c.Activity < lim {
			db.removeLearnt(e.ref, e.c, watches, drat)
		}
	}
}

func (db *ClauseDB) removeLearnt(ref ClauseRef, c *Clause, watches *WatchIndex, drat *DratRecorder) {
	watches.remove(c.Literals[0].Opposite(), ref)
	watches.remove(c.Literals[1].Opposite(), ref)
	drat.Capture(c.Literals, true)
	c.deleted = true
	delete(db.learnts, ref.id)
}

// LearntRefs returns the references of every learnt clause currently
// retained, in unspecified order. Used by simplify_db, which must iterate a
// stable snapshot while it may delete entries from the database.
func (db *ClauseDB) LearntRefs() []ClauseRef {
	refs := make([]ClauseRef, 0, len(db.learnts))
	for id := range db.learnts {
		refs = append(refs, ClauseRef{kind: refLearnt, id: id})
	}
	return refs
}

// RemoveLearnt deletes a single learnt clause, used by simplify_db to drop
// clauses satisfied at the root level.
func (db *ClauseDB) RemoveLearnt(ref ClauseRef, watches *WatchIndex, drat *DratRecorder) {
	c, ok := db.learnts[ref.id]
	if !ok {
		return
	}
	db.removeLearnt(ref, c, watches, drat)
}
