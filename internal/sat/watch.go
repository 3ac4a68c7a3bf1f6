package sat

// WatchIndex holds, for each of the 2n literals, the clause references
// currently watching it: a clause is in the watch list of ¬l when l is one
// of its two watched literals.
type WatchIndex struct {
	lists [][]ClauseRef
}

// NewWatchIndex returns an empty watch index.
func NewWatchIndex() *WatchIndex {
	return &WatchIndex{}
}

// Grow adds the two empty watch lists (positive and negative literal) for a
// freshly created variable.
func (w *WatchIndex) Grow() {
	w.lists = append(w.lists, nil, nil)
}

// add registers ref in l's watch list.
func (w *WatchIndex) add(l Literal, ref ClauseRef) {
	w.lists[l] = append(w.lists[l], ref)
}

// addAll registers every ref in refs in l's watch list, preserving order.
func (w *WatchIndex) addAll(l Literal, refs []ClauseRef) {
	w.lists[l] = append(w.lists[l], refs...)
}

// remove deletes the first occurrence of ref from l's watch list, if
// present.
func (w *WatchIndex) remove(l Literal, ref ClauseRef) {
	list := w.lists[l]
	for i, r := range list {
		if r.Equal(ref) {
			w.lists[l] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// list returns the current watch list for l.
func (w *WatchIndex) list(l Literal) []ClauseRef {
	return w.lists[l]
}

// clear empties l's watch list in constant time.
func (w *WatchIndex) clear(l Literal) {
	w.lists[l] = w.lists[l][:0]
}
