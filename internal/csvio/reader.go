// Package csvio loads CSV files into tables and writes cleaned tables back
// out. It is the file-based Loader/Sink collaborator around the cleaning
// pipeline; the pipeline itself never touches a file.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"custclean/internal/table"
)

// Reader errors.
var (
	ErrEmptyInput      = errors.New("csv has no header row")
	ErrDuplicateHeader = errors.New("duplicate column header")
)

// Options controls CSV reading and writing.
type Options struct {
	// Delimiter separates fields; zero means comma.
	Delimiter rune
}

// missingMarkers are cell values the loader treats as nulls, in addition to
// the empty cell.
var missingMarkers = map[string]bool{
	"NA": true, "N/A": true, "NaN": true, "null": true,
}

// Read loads the CSV file at path into a table.
func Read(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	t, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return t, nil
}

// Parse reads CSV content into a table. The first record is the header and
// must not repeat a name. Column typing is deliberately light: a column
// becomes float when it has at least one non-missing cell and every
// non-missing cell parses as a float; otherwise it stays string. Missing
// cells (empty or a marker such as NA) become nulls either way. Integers are
// never inferred here; the only int column is produced by the pipeline's
// coercer.
func Parse(r io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if seen[h] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHeader, h)
		}
		seen[h] = true
	}

	rows := records[1:]
	t := table.New()
	raw := make([]string, len(rows))

	for j, name := range header {
		for i, row := range rows {
			raw[i] = row[j]
		}
		if err := t.AddColumn(name, buildColumn(raw)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func buildColumn(raw []string) *table.Column {
	nonMissing := 0
	numeric := true
	for _, v := range raw {
		if isMissing(v) {
			continue
		}
		nonMissing++
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			numeric = false
			break
		}
	}

	if nonMissing == 0 || !numeric {
		col := table.NewColumn(table.KindString)
		for _, v := range raw {
			if isMissing(v) {
				col.AppendNull()
			} else {
				col.AppendString(v)
			}
		}
		return col
	}

	col := table.NewColumn(table.KindFloat)
	for _, v := range raw {
		if isMissing(v) {
			col.AppendNull()
			continue
		}
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		col.AppendFloat(f)
	}
	return col
}

func isMissing(v string) bool {
	return v == "" || missingMarkers[v]
}
