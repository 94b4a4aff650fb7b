// Package store implements the multi-indexed table store: a slab of
// pinned row storage per table, with every index kept in lock-step as
// rows are added, mutated and removed.
package store

import "tpcc/configs"

// Slab owns row storage for one table. Every row is allocated
// individually on the heap and referenced by pointer everywhere else
// (indices, transaction code); the slab's own bookkeeping slice only ever
// holds those pointers, so removing one row never relocates another —
// the pinned-row-storage design called for in the reference's notes on
// pointer-returning gets.
type Slab[Row any] struct {
	rows []*Row
	cap  int
}

// NewSlab returns an empty Slab sized for at most capacity rows.
func NewSlab[Row any](capacity int) *Slab[Row] {
	return &Slab[Row]{rows: make([]*Row, 0, capacity), cap: capacity}
}

// Alloc reserves a new row initialised to zero and returns a stable
// pointer to it. Exceeding the slab's pre-computed capacity is a
// programmer error, per the engine's single error-handling rule for
// resource exhaustion.
func (s *Slab[Row]) Alloc(zero Row) *Row {
	configs.Assert(len(s.rows) < s.cap, "slab capacity exceeded")
	r := new(Row)
	*r = zero
	s.rows = append(s.rows, r)
	return r
}

// Free drops row from the slab's bookkeeping. It does not zero or reuse
// the memory; once every index has removed its reference the row is
// simply unreachable and left for the garbage collector, the Go analogue
// of freeing a slot back to an arena.
func (s *Slab[Row]) Free(row *Row) {
	for i, r := range s.rows {
		if r == row {
			last := len(s.rows) - 1
			s.rows[i] = s.rows[last]
			s.rows[last] = nil
			s.rows = s.rows[:last]
			return
		}
	}
}

// Len reports the number of live rows.
func (s *Slab[Row]) Len() int {
	return len(s.rows)
}

// Rows returns every live row, in no particular order. Used by the
// verification harness, which sorts before comparing.
func (s *Slab[Row]) Rows() []*Row {
	return s.rows
}
