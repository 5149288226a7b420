// Package table defines the column-oriented, nullable data model the
// cleaning pipeline operates on: an ordered collection of named,
// equal-length columns with per-column typed cells.
package table

import (
	"errors"
	"fmt"
)

// Table errors.
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrLengthMismatch  = errors.New("column length mismatch")
)

// Table is an ordered collection of named columns. Every column has the same
// length at all times; the first column added fixes the row count.
type Table struct {
	names []string
	cols  map[string]*Column
}

// New returns an empty table.
func New() *Table {
	return &Table{cols: make(map[string]*Column)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.cols[t.names[0]].Len()
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column. A missing name yields an error wrapping
// ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return col, nil
}

// AddColumn appends a column under name. The name must be unused and the
// column must match the table's row count.
func (t *Table) AddColumn(name string, col *Column) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
	}
	if len(t.names) > 0 && col.Len() != t.Len() {
		return fmt.Errorf("%w: %s has %d cells, table has %d rows",
			ErrLengthMismatch, name, col.Len(), t.Len())
	}
	t.names = append(t.names, name)
	t.cols[name] = col
	return nil
}

// Replace swaps the named column's contents, keeping its position. The new
// column must match the table's row count.
func (t *Table) Replace(name string, col *Column) error {
	if _, ok := t.cols[name]; !ok {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	if col.Len() != t.Len() {
		return fmt.Errorf("%w: %s has %d cells, table has %d rows",
			ErrLengthMismatch, name, col.Len(), t.Len())
	}
	t.cols[name] = col
	return nil
}

// Put adds the column, or replaces it when the name is already taken.
func (t *Table) Put(name string, col *Column) error {
	if t.Has(name) {
		return t.Replace(name, col)
	}
	return t.AddColumn(name, col)
}

// Rename gives the column named from the name to, keeping its position.
// Renaming an absent column is a no-op. When to is already taken by another
// column, that column is dropped first, so the last rename wins.
func (t *Table) Rename(from, to string) {
	col, ok := t.cols[from]
	if !ok || from == to {
		return
	}
	if _, taken := t.cols[to]; taken {
		t.drop(to)
	}
	for i, n := range t.names {
		if n == from {
			t.names[i] = to
			break
		}
	}
	delete(t.cols, from)
	t.cols[to] = col
}

func (t *Table) drop(name string) {
	delete(t.cols, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy. Callers that need a failed cleaning run to
// leave the original untouched clean the clone instead.
func (t *Table) Clone() *Table {
	out := New()
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.cols[name] = t.cols[name].Clone()
	}
	return out
}
