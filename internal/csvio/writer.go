package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"custclean/internal/table"
)

// Write renders the table as CSV at path, creating parent directories as
// needed. Nulls become empty cells; floats use the shortest form that
// round-trips.
func Write(t *table.Table, path string, opts Options) error {
	names := t.Names()
	cols, err := columnsOf(t, names)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if opts.Delimiter != 0 {
		w.Comma = opts.Delimiter
	}

	if err := w.Write(names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(names))
	for i := 0; i < t.Len(); i++ {
		for j, col := range cols {
			row[j] = formatCell(col, i)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// Rows converts the table to row maps, one per record, for JSON output.
// Nulls become nil values.
func Rows(t *table.Table) ([]map[string]any, error) {
	names := t.Names()
	cols, err := columnsOf(t, names)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, t.Len())
	for i := range out {
		row := make(map[string]any, len(names))
		for j, col := range cols {
			row[names[j]] = cellValue(col, i)
		}
		out[i] = row
	}
	return out, nil
}

func columnsOf(t *table.Table, names []string) ([]*table.Column, error) {
	cols := make([]*table.Column, len(names))
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}
	return cols, nil
}

func formatCell(col *table.Column, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch col.Kind() {
	case table.KindString:
		v, _ := col.StringAt(i)
		return v
	case table.KindFloat:
		v, _ := col.FloatAt(i)
		return strconv.FormatFloat(v, 'f', -1, 64)
	case table.KindInt:
		v, _ := col.IntAt(i)
		return strconv.FormatInt(v, 10)
	case table.KindBool:
		v, _ := col.BoolAt(i)
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func cellValue(col *table.Column, i int) any {
	if col.IsNull(i) {
		return nil
	}
	switch col.Kind() {
	case table.KindString:
		v, _ := col.StringAt(i)
		return v
	case table.KindFloat:
		v, _ := col.FloatAt(i)
		return v
	case table.KindInt:
		v, _ := col.IntAt(i)
		return v
	case table.KindBool:
		v, _ := col.BoolAt(i)
		return v
	default:
		return nil
	}
}
