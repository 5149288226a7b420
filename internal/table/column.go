package table

import "fmt"

// Kind identifies the cell type a column holds.
type Kind string

// Column kinds.
const (
	KindString Kind = "string"
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
)

// Column is a homogeneously typed, nullable cell vector. A nil cell marks a
// missing value. Typed accessors report ok=false for nulls and for columns
// of another kind; typed setters and appends panic on a kind mismatch, since
// writing the wrong type is a programming error rather than a data-quality
// issue.
type Column struct {
	kind  Kind
	cells []any
}

// NewColumn returns an empty column of the given kind.
func NewColumn(kind Kind) *Column {
	return &Column{kind: kind}
}

// NewStringColumn builds a string column from values. valid[i] == false
// marks cell i as null; a nil valid slice marks every cell valid.
func NewStringColumn(values []string, valid []bool) *Column {
	return newColumn(KindString, values, valid)
}

// NewFloatColumn builds a float column from values, with valid as in
// NewStringColumn.
func NewFloatColumn(values []float64, valid []bool) *Column {
	return newColumn(KindFloat, values, valid)
}

// NewIntColumn builds an int column from values, with valid as in
// NewStringColumn.
func NewIntColumn(values []int64, valid []bool) *Column {
	return newColumn(KindInt, values, valid)
}

// NewBoolColumn builds a bool column from values, with valid as in
// NewStringColumn.
func NewBoolColumn(values []bool, valid []bool) *Column {
	return newColumn(KindBool, values, valid)
}

func newColumn[T any](kind Kind, values []T, valid []bool) *Column {
	cells := make([]any, len(values))
	for i, v := range values {
		if valid == nil || valid[i] {
			cells[i] = v
		}
	}
	return &Column{kind: kind, cells: cells}
}

// Kind returns the column's cell type.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.cells) }

// IsNull reports whether cell i is missing.
func (c *Column) IsNull(i int) bool { return c.cells[i] == nil }

// SetNull marks cell i missing.
func (c *Column) SetNull(i int) { c.cells[i] = nil }

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, cell := range c.cells {
		if cell == nil {
			n++
		}
	}
	return n
}

// StringAt returns cell i of a string column; ok is false for nulls and for
// columns of another kind.
func (c *Column) StringAt(i int) (string, bool) {
	v, ok := c.cells[i].(string)
	return v, ok
}

// FloatAt returns cell i of a float column, with ok as in StringAt.
func (c *Column) FloatAt(i int) (float64, bool) {
	v, ok := c.cells[i].(float64)
	return v, ok
}

// IntAt returns cell i of an int column, with ok as in StringAt.
func (c *Column) IntAt(i int) (int64, bool) {
	v, ok := c.cells[i].(int64)
	return v, ok
}

// BoolAt returns cell i of a bool column, with ok as in StringAt.
func (c *Column) BoolAt(i int) (bool, bool) {
	v, ok := c.cells[i].(bool)
	return v, ok
}

// SetString stores v in cell i of a string column, clearing any null.
func (c *Column) SetString(i int, v string) { c.set(i, KindString, v) }

// SetFloat stores v in cell i of a float column, clearing any null.
func (c *Column) SetFloat(i int, v float64) { c.set(i, KindFloat, v) }

// SetInt stores v in cell i of an int column, clearing any null.
func (c *Column) SetInt(i int, v int64) { c.set(i, KindInt, v) }

// SetBool stores v in cell i of a bool column, clearing any null.
func (c *Column) SetBool(i int, v bool) { c.set(i, KindBool, v) }

func (c *Column) set(i int, kind Kind, v any) {
	if c.kind != kind {
		panic(fmt.Sprintf("table: set %s cell on %s column", kind, c.kind))
	}
	c.cells[i] = v
}

// AppendString grows a string column by one cell holding v.
func (c *Column) AppendString(v string) { c.append(KindString, v) }

// AppendFloat grows a float column by one cell holding v.
func (c *Column) AppendFloat(v float64) { c.append(KindFloat, v) }

// AppendInt grows an int column by one cell holding v.
func (c *Column) AppendInt(v int64) { c.append(KindInt, v) }

// AppendBool grows a bool column by one cell holding v.
func (c *Column) AppendBool(v bool) { c.append(KindBool, v) }

// AppendNull grows the column by one missing cell.
func (c *Column) AppendNull() { c.cells = append(c.cells, nil) }

func (c *Column) append(kind Kind, v any) {
	if c.kind != kind {
		panic(fmt.Sprintf("table: append %s cell to %s column", kind, c.kind))
	}
	c.cells = append(c.cells, v)
}

// Floats returns the non-null values of a float column in row order.
// Columns of other kinds yield nil.
func (c *Column) Floats() []float64 {
	if c.kind != KindFloat {
		return nil
	}
	out := make([]float64, 0, len(c.cells))
	for _, cell := range c.cells {
		if v, ok := cell.(float64); ok {
			out = append(out, v)
		}
	}
	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	cells := make([]any, len(c.cells))
	copy(cells, c.cells)
	return &Column{kind: c.kind, cells: cells}
}
