package cleaning

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"custclean/internal/table"
)

// Columns rewritten by the numeric coercer.
const (
	lifetimeValueColumn = "customer_lifetime_value"
	complaintsColumn    = "number_of_open_complaints"
)

// complaintsPattern captures the middle token of the slash-delimited
// complaints triplet, e.g. "1/5/00" yields 5.
var complaintsPattern = regexp.MustCompile(`/(\d+)/`)

// CoerceNumerics replaces customer_lifetime_value with a nullable float
// column (all trailing % stripped, surrounding whitespace tolerated) and
// number_of_open_complaints with a nullable int column holding the middle
// slash-delimited token. Malformed values never fail the stage: they degrade
// to null. Columns that are already numeric pass through untouched, so the
// stage is idempotent.
func CoerceNumerics(t *table.Table) (*table.Table, error) {
	if err := coerceLifetimeValue(t); err != nil {
		return nil, err
	}
	if err := coerceOpenComplaints(t); err != nil {
		return nil, err
	}
	return t, nil
}

func coerceLifetimeValue(t *table.Table) error {
	col, err := t.Column(lifetimeValueColumn)
	if err != nil {
		return err
	}
	if col.Kind() != table.KindString {
		return nil
	}
	out := table.NewColumn(table.KindFloat)
	for i := 0; i < col.Len(); i++ {
		raw, ok := col.StringAt(i)
		if !ok {
			out.AppendNull()
			continue
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(strings.TrimRight(raw, "%")))
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			out.AppendNull()
			continue
		}
		out.AppendFloat(v)
	}
	return t.Replace(lifetimeValueColumn, out)
}

func coerceOpenComplaints(t *table.Table) error {
	col, err := t.Column(complaintsColumn)
	if err != nil {
		return err
	}
	if col.Kind() != table.KindString {
		return nil
	}
	out := table.NewColumn(table.KindInt)
	for i := 0; i < col.Len(); i++ {
		raw, ok := col.StringAt(i)
		if !ok {
			out.AppendNull()
			continue
		}
		m := complaintsPattern.FindStringSubmatch(raw)
		if m == nil {
			out.AppendNull()
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			out.AppendNull()
			continue
		}
		out.AppendInt(n)
	}
	return t.Replace(complaintsColumn, out)
}
