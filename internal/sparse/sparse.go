// Package sparse provides a sparse set of input offsets.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its members in insertion order. The matcher uses it to
// deduplicate position sets and to track the offsets a repetition has already
// expanded, where the universe of values is bounded by len(input)+1.
package sparse

// SparseSet is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in the dense array; an entry is
// only trusted when the dense array points back at the same value, so Clear
// never has to touch the sparse array.
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Members in insertion order
}

// NewSparseSet creates a new sparse set holding values in [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set and reports whether it was newly added.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense)) //nolint:gosec // G115: len(dense) <= capacity
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if the value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all elements in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Capacity returns the exclusive upper bound on storable values.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Resize makes room for values in [0, capacity).
// Growing keeps the current members; shrinking clears the set.
func (s *SparseSet) Resize(capacity uint32) {
	if int(capacity) <= len(s.sparse) {
		s.Clear()
		return
	}
	sparse := make([]uint32, capacity)
	copy(sparse, s.sparse)
	dense := make([]uint32, len(s.dense), capacity)
	copy(dense, s.dense)
	s.sparse = sparse
	s.dense = dense
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
