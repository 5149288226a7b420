package cleaning

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"custclean/internal/table"
)

// ErrColumnType reports a fill column whose kind does not match the fill
// policy: categorical fills need string columns, median fills float ones.
var ErrColumnType = errors.New("column has wrong kind")

const (
	complaintsFlagColumn = "complaints_missing"
	unknownLabel         = "Unknown"
)

// Fill policy of the missing value stage. The complaints column is absent
// from both lists on purpose: it is flagged, never filled.
var (
	categoricalFillColumns = []string{
		"customer", "state", "gender", "education", "policy_type", "vehicle_class",
	}
	numericFillColumns = []string{
		"total_claim_amount", "monthly_premium_auto", "customer_income", lifetimeValueColumn,
	}
)

// FillMissing first records which rows are missing an open-complaints count
// in the bool column complaints_missing, then fills nulls: categorical
// columns with the literal Unknown, numeric columns with their median over
// non-null values (computed once per column). Any absent required column
// fails the stage.
func FillMissing(t *table.Table) (*table.Table, error) {
	if err := flagMissingComplaints(t); err != nil {
		return nil, err
	}
	for _, name := range categoricalFillColumns {
		if err := fillCategorical(t, name); err != nil {
			return nil, err
		}
	}
	for _, name := range numericFillColumns {
		if err := fillNumericMedian(t, name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func flagMissingComplaints(t *table.Table) error {
	col, err := t.Column(complaintsColumn)
	if err != nil {
		return err
	}
	flags := table.NewColumn(table.KindBool)
	for i := 0; i < col.Len(); i++ {
		flags.AppendBool(col.IsNull(i))
	}
	return t.Put(complaintsFlagColumn, flags)
}

func fillCategorical(t *table.Table, name string) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if col.Kind() != table.KindString {
		return fmt.Errorf("%w: %s is %s, want %s", ErrColumnType, name, col.Kind(), table.KindString)
	}
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			col.SetString(i, unknownLabel)
		}
	}
	return nil
}

func fillNumericMedian(t *table.Table, name string) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if col.Kind() != table.KindFloat {
		return fmt.Errorf("%w: %s is %s, want %s", ErrColumnType, name, col.Kind(), table.KindFloat)
	}
	if col.NullCount() == 0 {
		return nil
	}
	median, err := stats.Median(col.Floats())
	if err != nil {
		// Every cell is null; there is no median to fill with.
		return nil
	}
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			col.SetFloat(i, median)
		}
	}
	return nil
}
