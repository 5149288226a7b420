// Package report renders human-readable views of a table: a markdown
// preview of the leading rows and per-column summaries. The cleaner prints
// these around a run so an operator can eyeball the result without opening
// the output file.
package report

import (
	"strconv"
	"strings"

	"custclean/internal/table"
	"custclean/pkg/utils"

	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"
)

// maxCellWidth caps how many display cells a preview value may occupy so one
// long free-text field cannot blow up the whole table.
const maxCellWidth = 24

var helper = utils.NewStringHelper()

// ColumnSummary describes one column of a table.
type ColumnSummary struct {
	Name  string
	Kind  table.Kind
	Nulls int

	// Numeric is set for float and int columns holding at least one value;
	// the stats below are only meaningful when it is true.
	Numeric bool
	Min     float64
	Median  float64
	Max     float64
	Mean    float64
}

// Preview renders the first n rows as an aligned markdown table. Nulls show
// as empty cells.
func Preview(t *table.Table, n int) (string, error) {
	if n > t.Len() {
		n = t.Len()
	}
	if n < 0 {
		n = 0
	}

	names := t.Names()
	cols := make([]*table.Column, len(names))
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return "", err
		}
		cols[j] = col
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = cellText(col, i)
		}
		rows = append(rows, row)
	}

	return renderTable(names, rows), nil
}

// Summarize computes a ColumnSummary for every column, in table order.
func Summarize(t *table.Table) ([]ColumnSummary, error) {
	names := t.Names()
	out := make([]ColumnSummary, 0, len(names))

	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}

		s := ColumnSummary{Name: name, Kind: col.Kind(), Nulls: col.NullCount()}
		if vals := numericValues(col); len(vals) > 0 {
			// stats only errors on empty input, which is excluded here.
			s.Numeric = true
			s.Min, _ = stats.Min(vals)
			s.Median, _ = stats.Median(vals)
			s.Max, _ = stats.Max(vals)
			s.Mean, _ = stats.Mean(vals)
		}
		out = append(out, s)
	}

	return out, nil
}

// FormatSummaries renders summaries as an aligned markdown table. Stat cells
// stay empty for non-numeric columns.
func FormatSummaries(sums []ColumnSummary) string {
	header := []string{"column", "kind", "nulls", "min", "median", "max", "mean"}

	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		row := []string{s.Name, string(s.Kind), strconv.Itoa(s.Nulls), "", "", "", ""}
		if s.Numeric {
			row[3] = formatStat(s.Min)
			row[4] = formatStat(s.Median)
			row[5] = formatStat(s.Max)
			row[6] = formatStat(s.Mean)
		}
		rows = append(rows, row)
	}

	return renderTable(header, rows)
}

// renderTable lays out a header and rows as a pipe-delimited markdown table,
// padding each column to its widest cell by display width so multibyte
// values stay aligned.
func renderTable(header []string, rows [][]string) string {
	colCount := len(header)
	widths := make([]int, colCount)

	measure := func(cells []string) {
		for j := 0; j < len(cells) && j < colCount; j++ {
			if w := runewidth.StringWidth(cells[j]); w > widths[j] {
				widths[j] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	// Separator rows need at least "---".
	for j := range widths {
		if widths[j] < 3 {
			widths[j] = 3
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(cells) {
				content = cells[j]
			}
			sb.WriteString(" ")
			sb.WriteString(content)
			if pad := widths[j] - runewidth.StringWidth(content); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(header)
	sb.WriteString("|")
	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", widths[j]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

func cellText(col *table.Column, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch col.Kind() {
	case table.KindString:
		v, _ := col.StringAt(i)
		return helper.TruncateString(helper.NormalizeWhitespace(v), maxCellWidth)
	case table.KindFloat:
		v, _ := col.FloatAt(i)
		return formatStat(v)
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

func numericValues(col *table.Column) []float64 {
	switch col.Kind() {
	case table.KindFloat:
		return col.Floats()
	case table.KindInt:
		vals := make([]float64, 0, col.Len())
		for i := 0; i < col.Len(); i++ {
			if v, ok := col.IntAt(i); ok {
				vals = append(vals, float64(v))
			}
		}
		return vals
	default:
		return nil
	}
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
