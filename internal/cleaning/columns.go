package cleaning

import (
	"strings"

	"custclean/internal/table"
)

// columnRenames maps already-canonicalized headers to their final names.
var columnRenames = map[string]string{
	"st":     "state",
	"income": "customer_income",
}

// NormalizeColumnNames lowercases every column name, replaces spaces with
// underscores, and applies the explicit renames (st to state, income to
// customer_income). Absent rename targets are simply not renamed, so the
// stage never fails, and applying it twice yields the same names as
// applying it once.
func NormalizeColumnNames(t *table.Table) (*table.Table, error) {
	for _, name := range t.Names() {
		canonical := strings.ReplaceAll(strings.ToLower(name), " ", "_")
		if renamed, ok := columnRenames[canonical]; ok {
			canonical = renamed
		}
		if canonical != name {
			t.Rename(name, canonical)
		}
	}
	return t, nil
}
