package boutique

import (
	"iter"
	"slices"
)

// Row is one record of a shop table.
type Row interface {
	// RowID returns the row's integer identifier. For ventes and depenses
	// the identifier is shared by every line of one transaction group.
	RowID() int
}

// Table holds the in-memory copy of one CSV table.
//
// A Table is never mutated in place: stores build a new Table for every
// write so that cached readers keep a consistent view.
type Table[R Row] struct {
	rows []R
}

// NewTable creates a table from the given rows.
func NewTable[R Row](rows ...R) *Table[R] {
	return &Table[R]{rows: rows}
}

// Len returns the number of rows.
func (t *Table[R]) Len() int { return len(t.rows) }

// Empty reports whether the table has no rows.
func (t *Table[R]) Empty() bool { return len(t.rows) == 0 }

// Rows returns an iterator over the rows in their on-disk order.
func (t *Table[R]) Rows() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Slice returns a copy of the rows.
func (t *Table[R]) Slice() []R { return slices.Clone(t.rows) }

// NextID returns 1 for an empty table, else the maximum identifier plus
// one. Identifiers of deleted rows are never reused, so identifiers are
// monotonic but may have gaps.
//
// It must be computed against a freshly invalidated table, never a stale
// cache, or colliding identifiers could be assigned.
func (t *Table[R]) NextID() int {
	max := 0
	for _, r := range t.rows {
		if id := r.RowID(); id > max {
			max = id
		}
	}
	return max + 1
}

// append returns a new table with rows appended.
func (t *Table[R]) append(rows ...R) *Table[R] {
	return &Table[R]{rows: append(slices.Clone(t.rows), rows...)}
}

// without returns a new table with every row of the identifier's
// transaction group removed, and the number of rows removed.
func (t *Table[R]) without(id int) (*Table[R], int) {
	kept := make([]R, 0, len(t.rows))
	removed := 0
	for _, r := range t.rows {
		if r.RowID() == id {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	return &Table[R]{rows: kept}, removed
}
