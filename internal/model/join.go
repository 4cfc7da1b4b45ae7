package model

import (
	"fmt"
	"slices"
	"strconv"
)

type JoinKind int

const (
	JoinOuter JoinKind = iota
	JoinInner
)

// OuterJoin merges two tables on their key columns. Keys present in either
// side appear in the result; cells from the side lacking a key are null.
func OuterJoin(left, right *Table) *Table {
	return Join(left, right, JoinOuter)
}

// Join merges right into left on the shared key columns and returns a new
// table sorted by key. Colliding value column names from right get a numeric
// suffix. A table with no value columns and no rows acts as the identity.
//
// Both tables must have identical key columns; anything else is a caller bug.
func Join(left, right *Table, kind JoinKind) *Table {
	if left == nil && right == nil {
		return EmptyTable(nil)
	}
	if isIdentity(left) && right != nil {
		out := right.Clone()
		out.SortByKey()
		return out
	}
	if isIdentity(right) && left != nil {
		out := left.Clone()
		out.SortByKey()
		return out
	}
	if !slices.Equal(left.KeyColumns, right.KeyColumns) {
		panic(fmt.Sprintf("model: join key mismatch %v vs %v", left.KeyColumns, right.KeyColumns))
	}

	columns := append([]string(nil), left.Columns...)
	columns = append(columns, uniqueNames(left.Columns, right.Columns)...)
	width := len(columns)
	offset := len(left.Columns)

	out := NewTable(left.KeyColumns, columns)
	index := make(map[Key][]int, len(left.Rows))
	filled := make([]bool, 0, len(left.Rows))

	for _, r := range left.Rows {
		cells := make([]Cell, width)
		copy(cells, r.Cells)
		k := r.Key()
		index[k] = append(index[k], len(out.Rows))
		out.Rows = append(out.Rows, Row{Date: r.Date, Hour: r.Hour, Cells: cells})
		filled = append(filled, false)
	}

	for _, r := range right.Rows {
		k := r.Key()
		matches := index[k]
		if len(matches) == 0 {
			if kind == JoinInner {
				continue
			}
			cells := make([]Cell, width)
			copy(cells[offset:], r.Cells)
			index[k] = append(index[k], len(out.Rows))
			out.Rows = append(out.Rows, Row{Date: r.Date, Hour: r.Hour, Cells: cells})
			filled = append(filled, true)
			continue
		}
		for _, m := range matches {
			if !filled[m] {
				copy(out.Rows[m].Cells[offset:], r.Cells)
				filled[m] = true
				continue
			}
			// duplicate key on the right: emit another row pairing left's cells
			cells := make([]Cell, width)
			copy(cells, out.Rows[m].Cells[:offset])
			copy(cells[offset:], r.Cells)
			out.Rows = append(out.Rows, Row{Date: out.Rows[m].Date, Hour: out.Rows[m].Hour, Cells: cells})
			filled = append(filled, true)
		}
	}

	if kind == JoinInner {
		kept := out.Rows[:0]
		for i, r := range out.Rows {
			if filled[i] {
				kept = append(kept, r)
			}
		}
		out.Rows = kept
	}

	out.SortByKey()
	return out
}

func isIdentity(t *Table) bool {
	return t == nil || (len(t.Columns) == 0 && len(t.Rows) == 0)
}

// uniqueNames returns add with every name made distinct from existing and from
// earlier entries of add, using " (2)", " (3)", ... suffixes.
func uniqueNames(existing, add []string) []string {
	seen := make(map[string]bool, len(existing)+len(add))
	for _, n := range existing {
		seen[n] = true
	}
	out := make([]string, len(add))
	for i, n := range add {
		name := n
		for j := 2; seen[name]; j++ {
			name = n + " (" + strconv.Itoa(j) + ")"
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

// Concat stacks the rows of tables laid out as keyColumns+columns, in
// argument order. Nil, empty and differently shaped tables are skipped.
func Concat(keyColumns, columns []string, tables ...*Table) *Table {
	out := NewTable(keyColumns, columns)
	for _, t := range tables {
		if t.Empty() || !slices.Equal(t.KeyColumns, out.KeyColumns) || !slices.Equal(t.Columns, out.Columns) {
			continue
		}
		for _, r := range t.Rows {
			out.Rows = append(out.Rows, Row{Date: r.Date, Hour: r.Hour, Cells: append([]Cell(nil), r.Cells...)})
		}
	}
	return out
}
