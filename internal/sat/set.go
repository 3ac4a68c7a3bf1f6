package sat

// VarSet represents a set of variable indices in [0, n) that can be cleared
// in constant time, regardless of how many elements it holds. It is used by
// conflict analysis to mark variables it has already visited.
type VarSet struct {
	stamp    []uint32
	current  uint32
}

// Contains reports whether v is in the set.
func (s *VarSet) Contains(v int) bool {
	return s.current != 0 && s.stamp[v] == s.current
}

// Add inserts v into the set.
func (s *VarSet) Add(v int) {
	if s.current == 0 { // zero-value set: stamp 0 means "never added"
		s.current = 1
	}
	s.stamp[v] = s.current
}

// Clear empties the set.
func (s *VarSet) Clear() {
	s.current++
	if s.current == 0 { // wrapped around
		s.current = 1
		for i := range s.stamp {
			s.stamp[i] = 0
		}
	}
}

// Grow extends the set's capacity by one element (initially absent).
func (s *VarSet) Grow() {
	s.stamp = append(s.stamp, 0)
}
