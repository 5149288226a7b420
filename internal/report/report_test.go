package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"custclean/internal/table"
)

func previewTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := table.New()
	add := func(name string, col *table.Column) {
		if err := tbl.AddColumn(name, col); err != nil {
			t.Fatalf("AddColumn(%q) error = %v", name, err)
		}
	}
	add("name", table.NewStringColumn([]string{"ann", ""}, []bool{true, false}))
	add("score", table.NewFloatColumn([]float64{1.5, 22.25}, nil))
	add("open", table.NewIntColumn([]int64{5, 0}, []bool{true, false}))
	add("flag", table.NewBoolColumn([]bool{true, false}, nil))

	return tbl
}

func TestPreview(t *testing.T) {
	got, err := Preview(previewTable(t), 2)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	expected := `
| name | score | open | flag  |
| ---- | ----- | ---- | ----- |
| ann  | 1.50  | 5    | true  |
|      | 22.25 |      | false |
`

	if strings.TrimSpace(got) != strings.TrimSpace(expected) {
		t.Errorf("Preview() = \n%v\nwant \n%v", got, expected)
	}
}

func TestPreviewMixedCJKAndASCII(t *testing.T) {
	tbl := table.New()
	if err := tbl.AddColumn("city", table.NewStringColumn(
		[]string{"東京", "nyc"}, nil)); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if err := tbl.AddColumn("pop", table.NewFloatColumn(
		[]float64{0.5, 2.25}, nil)); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}

	got, err := Preview(tbl, 2)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	// 東(2) 京(2) = 4 display cells, same as the "city" header.
	expected := `
| city | pop  |
| ---- | ---- |
| 東京 | 0.50 |
| nyc  | 2.25 |
`

	if strings.TrimSpace(got) != strings.TrimSpace(expected) {
		t.Errorf("Preview() = \n%v\nwant \n%v", got, expected)
	}
}

func TestPreviewTruncatesLongValues(t *testing.T) {
	tbl := table.New()
	long := "a  very\tlong description that keeps going on"
	if err := tbl.AddColumn("notes", table.NewStringColumn(
		[]string{long}, nil)); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}

	got, err := Preview(tbl, 1)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if !strings.Contains(got, "| a very long descripti... |") {
		t.Errorf("Preview() = %v, want whitespace collapsed and value cut at %d cells", got, maxCellWidth)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w != runewidth.StringWidth(lines[0]) {
			t.Errorf("line %q has width %d, want %d", line, w, runewidth.StringWidth(lines[0]))
		}
	}
}

func TestPreviewClampsRowCount(t *testing.T) {
	tbl := previewTable(t)

	got, err := Preview(tbl, 10)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("Preview(10 of 2 rows) rendered %d lines, want 4", n)
	}

	got, err = Preview(tbl, -1)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("Preview(-1) rendered %d lines, want header and separator only", n)
	}
}

func TestSummarize(t *testing.T) {
	tbl := table.New()
	add := func(name string, col *table.Column) {
		if err := tbl.AddColumn(name, col); err != nil {
			t.Fatalf("AddColumn(%q) error = %v", name, err)
		}
	}
	add("name", table.NewStringColumn(
		[]string{"ann", "bo", "cy", ""}, []bool{true, true, true, false}))
	add("score", table.NewFloatColumn(
		[]float64{1, 2, 3, 0}, []bool{true, true, true, false}))
	add("open", table.NewIntColumn([]int64{5, 1, 0, 2}, nil))
	add("flag", table.NewBoolColumn([]bool{true, false, true, false}, nil))

	got, err := Summarize(tbl)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	expected := []ColumnSummary{
		{Name: "name", Kind: table.KindString, Nulls: 1},
		{Name: "score", Kind: table.KindFloat, Nulls: 1,
			Numeric: true, Min: 1, Median: 2, Max: 3, Mean: 2},
		{Name: "open", Kind: table.KindInt, Nulls: 0,
			Numeric: true, Min: 0, Median: 1.5, Max: 5, Mean: 2},
		{Name: "flag", Kind: table.KindBool, Nulls: 0},
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Summarize() = %+v, want %+v", got, expected)
	}
}

func TestSummarizeAllNullColumn(t *testing.T) {
	tbl := table.New()
	if err := tbl.AddColumn("score", table.NewFloatColumn(
		[]float64{0, 0}, []bool{false, false})); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}

	got, err := Summarize(tbl)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Summarize() returned %d summaries, want 1", len(got))
	}
	if got[0].Numeric {
		t.Errorf("Summarize() marked an all-null column numeric")
	}
	if got[0].Nulls != 2 {
		t.Errorf("Summarize() Nulls = %d, want 2", got[0].Nulls)
	}
}

func TestFormatSummaries(t *testing.T) {
	sums := []ColumnSummary{
		{Name: "name", Kind: table.KindString, Nulls: 1},
		{Name: "score", Kind: table.KindFloat, Nulls: 0,
			Numeric: true, Min: 1, Median: 2, Max: 3, Mean: 2},
	}

	got := FormatSummaries(sums)

	expected := `
| column | kind   | nulls | min  | median | max  | mean |
| ------ | ------ | ----- | ---- | ------ | ---- | ---- |
| name   | string | 1     |      |        |      |      |
| score  | float  | 0     | 1.00 | 2.00   | 3.00 | 2.00 |
`

	if strings.TrimSpace(got) != strings.TrimSpace(expected) {
		t.Errorf("FormatSummaries() = \n%v\nwant \n%v", got, expected)
	}
}
