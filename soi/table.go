// Package soi loads and holds IRS Statistics of Income tables: one row
// per (state, year, income bracket) plus one aggregate row per
// (state, year) carrying percentile cumulative sums.
package soi

import (
	"fmt"
	"sort"
)

// Col is a named column.
type Col struct {
	name string

	*Vector
}

func NewCol(name string, data any) (*Col, error) {
	var (
		v *Vector
		e error
	)
	if v, e = NewVector(data); e != nil {
		return nil, e
	}

	return &Col{name: name, Vector: v}, nil
}

func (c *Col) Name() string {
	return c.name
}

func (c *Col) Copy() *Col {
	return &Col{name: c.name, Vector: c.Vector.Copy()}
}

// Table is an ordered set of equal-length columns. The loaded dataset
// is treated as an immutable snapshot: every derivation that needs a
// subset or an ordering works on a copy (Where, Sort keys copies).
type Table struct {
	cols []*Col

	by []*Col // sort keys, set by Sort
}

func NewTable(cols ...*Col) (*Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewTable")
	}

	n := cols[0].Len()
	for ind := 1; ind < len(cols); ind++ {
		if cols[ind].Len() != n {
			return nil, fmt.Errorf("length mismatch: %s has %d rows, want %d",
				cols[ind].Name(), cols[ind].Len(), n)
		}
	}

	seen := make(map[string]bool)
	for _, c := range cols {
		if seen[c.Name()] {
			return nil, fmt.Errorf("duplicate column name: %s", c.Name())
		}
		seen[c.Name()] = true
	}

	return &Table{cols: cols}, nil
}

func (t *Table) RowCount() int {
	return t.cols[0].Len()
}

func (t *Table) ColumnCount() int {
	return len(t.cols)
}

func (t *Table) ColumnNames() []string {
	var names []string
	for _, c := range t.cols {
		names = append(names, c.Name())
	}

	return names
}

func (t *Table) Column(name string) (*Col, error) {
	for _, c := range t.cols {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("column %s not found", name)
}

func (t *Table) HasColumn(name string) bool {
	_, e := t.Column(name)
	return e == nil
}

func (t *Table) Floats(name string) ([]float64, error) {
	var (
		c *Col
		e error
	)
	if c, e = t.Column(name); e != nil {
		return nil, e
	}

	if c.Kind() != KindFloat && c.Kind() != KindInt {
		return nil, fmt.Errorf("column %s is %s, not numeric", name, c.Kind())
	}

	return c.Floats(), nil
}

func (t *Table) Ints(name string) ([]int, error) {
	var (
		c *Col
		e error
	)
	if c, e = t.Column(name); e != nil {
		return nil, e
	}

	if c.Kind() != KindInt {
		return nil, fmt.Errorf("column %s is %s, not int", name, c.Kind())
	}

	return c.Ints(), nil
}

func (t *Table) Strs(name string) ([]string, error) {
	var (
		c *Col
		e error
	)
	if c, e = t.Column(name); e != nil {
		return nil, e
	}

	if c.Kind() != KindString {
		return nil, fmt.Errorf("column %s is %s, not string", name, c.Kind())
	}

	return c.Strs(), nil
}

// Where returns a new table holding the rows where mask is true. The
// result shares nothing with the receiver.
func (t *Table) Where(mask []bool) (*Table, error) {
	if len(mask) != t.RowCount() {
		return nil, fmt.Errorf("mask length %d, table has %d rows", len(mask), t.RowCount())
	}

	var cols []*Col
	for _, c := range t.cols {
		cols = append(cols, &Col{name: c.Name(), Vector: c.Vector.Where(mask)})
	}

	return &Table{cols: cols}, nil
}

// EqInt builds a row mask for col == val.
func (t *Table) EqInt(name string, val int) ([]bool, error) {
	var (
		x []int
		e error
	)
	if x, e = t.Ints(name); e != nil {
		return nil, e
	}

	mask := make([]bool, len(x))
	for ind := 0; ind < len(x); ind++ {
		mask[ind] = x[ind] == val
	}

	return mask, nil
}

// EqStr builds a row mask for col == val.
func (t *Table) EqStr(name, val string) ([]bool, error) {
	var (
		x []string
		e error
	)
	if x, e = t.Strs(name); e != nil {
		return nil, e
	}

	mask := make([]bool, len(x))
	for ind := 0; ind < len(x); ind++ {
		mask[ind] = x[ind] == val
	}

	return mask, nil
}

// And combines masks elementwise.
func And(masks ...[]bool) []bool {
	if len(masks) == 0 {
		return nil
	}

	out := make([]bool, len(masks[0]))
	copy(out, masks[0])
	for ind := 1; ind < len(masks); ind++ {
		for j := range out {
			out[j] = out[j] && masks[ind][j]
		}
	}

	return out
}

// Not negates a mask.
func Not(mask []bool) []bool {
	out := make([]bool, len(mask))
	for ind := range mask {
		out[ind] = !mask[ind]
	}

	return out
}

// Sort orders the rows of t by the key columns, ascending. All columns
// move together.
func (t *Table) Sort(keys ...string) error {
	var by []*Col
	for ind := 0; ind < len(keys); ind++ {
		var (
			c *Col
			e error
		)
		if c, e = t.Column(keys[ind]); e != nil {
			return e
		}

		by = append(by, c)
	}

	t.by = by
	sort.Stable(t)
	t.by = nil

	return nil
}

// Len, Less, Swap satisfy sort.Interface for Sort.
func (t *Table) Len() int {
	return t.RowCount()
}

func (t *Table) Less(i, j int) bool {
	for ind := 0; ind < len(t.by); ind++ {
		if t.by[ind].Vector.Less(i, j) {
			return true
		}

		if t.by[ind].Vector.Less(j, i) {
			return false
		}
		// equal -- keep checking
	}

	return false
}

func (t *Table) Swap(i, j int) {
	for _, c := range t.cols {
		c.Vector.Swap(i, j)
	}
}

// Copy deep-copies the table.
func (t *Table) Copy() *Table {
	var cols []*Col
	for _, c := range t.cols {
		cols = append(cols, c.Copy())
	}

	return &Table{cols: cols}
}
