package cleaning

import (
	"reflect"
	"testing"

	"custclean/internal/table"
)

func emptyColumns(t *testing.T, names ...string) *table.Table {
	t.Helper()

	tbl := table.New()
	for _, name := range names {
		if err := tbl.AddColumn(name, table.NewStringColumn(nil, nil)); err != nil {
			t.Fatalf("AddColumn %s: %v", name, err)
		}
	}

	return tbl
}

func TestNormalizeColumnNames(t *testing.T) {
	tbl := emptyColumns(t,
		"Customer", "ST", "GENDER", "Customer Lifetime Value", "Income", "Monthly Premium Auto",
	)

	if _, err := NormalizeColumnNames(tbl); err != nil {
		t.Fatalf("NormalizeColumnNames: %v", err)
	}

	want := []string{
		"customer", "state", "gender", "customer_lifetime_value", "customer_income", "monthly_premium_auto",
	}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestNormalizeColumnNames_Idempotent(t *testing.T) {
	tbl := emptyColumns(t, "Customer", "ST", "Total Claim Amount")

	if _, err := NormalizeColumnNames(tbl); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	once := tbl.Names()

	if _, err := NormalizeColumnNames(tbl); err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if got := tbl.Names(); !reflect.DeepEqual(got, once) {
		t.Errorf("second pass changed names: %v, want %v", got, once)
	}
}

func TestNormalizeColumnNames_NoRenameTargets(t *testing.T) {
	tbl := emptyColumns(t, "policy_type", "vehicle_class")

	if _, err := NormalizeColumnNames(tbl); err != nil {
		t.Fatalf("NormalizeColumnNames: %v", err)
	}

	want := []string{"policy_type", "vehicle_class"}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestNormalizeColumnNames_CollisionLastWins(t *testing.T) {
	tbl := table.New()
	if err := tbl.AddColumn("ST", table.NewStringColumn([]string{"wa"}, nil)); err != nil {
		t.Fatalf("AddColumn ST: %v", err)
	}
	if err := tbl.AddColumn("State", table.NewStringColumn([]string{"az"}, nil)); err != nil {
		t.Fatalf("AddColumn State: %v", err)
	}

	if _, err := NormalizeColumnNames(tbl); err != nil {
		t.Fatalf("NormalizeColumnNames: %v", err)
	}

	names := tbl.Names()
	if len(names) != 1 || names[0] != "state" {
		t.Fatalf("Names = %v, want [state]", names)
	}

	col, err := tbl.Column("state")
	if err != nil {
		t.Fatalf("Column(state): %v", err)
	}
	if v, _ := col.StringAt(0); v != "az" {
		t.Errorf("surviving cell = %q, want \"az\" (the later rename wins)", v)
	}
}
