package table

import (
	"errors"
	"testing"
)

func twoColumnTable(t *testing.T) *Table {
	t.Helper()

	tbl := New()
	if err := tbl.AddColumn("name", NewStringColumn([]string{"ann", "bob"}, nil)); err != nil {
		t.Fatalf("AddColumn name: %v", err)
	}
	if err := tbl.AddColumn("score", NewFloatColumn([]float64{1, 2}, nil)); err != nil {
		t.Fatalf("AddColumn score: %v", err)
	}

	return tbl
}

func TestTable_LenAndNames(t *testing.T) {
	tbl := twoColumnTable(t)

	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}

	names := tbl.Names()
	if len(names) != 2 || names[0] != "name" || names[1] != "score" {
		t.Errorf("Names = %v, want [name score]", names)
	}

	if New().Len() != 0 {
		t.Error("empty table should have zero rows")
	}
}

func TestTable_AddColumnErrors(t *testing.T) {
	tbl := twoColumnTable(t)

	err := tbl.AddColumn("name", NewStringColumn([]string{"x", "y"}, nil))
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("duplicate add error = %v, want ErrDuplicateColumn", err)
	}

	err = tbl.AddColumn("extra", NewStringColumn([]string{"only one"}, nil))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short column error = %v, want ErrLengthMismatch", err)
	}
}

func TestTable_ColumnNotFound(t *testing.T) {
	tbl := twoColumnTable(t)

	_, err := tbl.Column("absent")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Column(absent) error = %v, want ErrColumnNotFound", err)
	}
}

func TestTable_ReplaceKeepsPosition(t *testing.T) {
	tbl := twoColumnTable(t)

	if err := tbl.Replace("name", NewStringColumn([]string{"cat", "dog"}, nil)); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if names := tbl.Names(); names[0] != "name" {
		t.Errorf("Names after Replace = %v, want name first", names)
	}

	col, err := tbl.Column("name")
	if err != nil {
		t.Fatalf("Column(name): %v", err)
	}
	if v, _ := col.StringAt(0); v != "cat" {
		t.Errorf("cell = %q, want \"cat\"", v)
	}

	err = tbl.Replace("absent", NewStringColumn([]string{"x", "y"}, nil))
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Replace(absent) error = %v, want ErrColumnNotFound", err)
	}

	err = tbl.Replace("name", NewStringColumn([]string{"just one"}, nil))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Replace with short column error = %v, want ErrLengthMismatch", err)
	}
}

func TestTable_Put(t *testing.T) {
	tbl := twoColumnTable(t)

	if err := tbl.Put("flag", NewBoolColumn([]bool{true, false}, nil)); err != nil {
		t.Fatalf("Put new column: %v", err)
	}
	if !tbl.Has("flag") {
		t.Fatal("flag column missing after Put")
	}

	if err := tbl.Put("flag", NewBoolColumn([]bool{false, false}, nil)); err != nil {
		t.Fatalf("Put existing column: %v", err)
	}

	col, _ := tbl.Column("flag")
	if v, _ := col.BoolAt(0); v {
		t.Error("Put should have replaced the flag column")
	}
}

func TestTable_Rename(t *testing.T) {
	tbl := twoColumnTable(t)

	tbl.Rename("name", "customer")

	if tbl.Has("name") {
		t.Error("old name still present after Rename")
	}
	if names := tbl.Names(); names[0] != "customer" {
		t.Errorf("Names = %v, want customer first", names)
	}

	// Renaming an absent column changes nothing.
	tbl.Rename("ghost", "anything")
	if len(tbl.Names()) != 2 {
		t.Errorf("Names = %v, want 2 columns", tbl.Names())
	}
}

func TestTable_RenameOntoExistingDropsTarget(t *testing.T) {
	tbl := twoColumnTable(t)

	tbl.Rename("score", "name")

	names := tbl.Names()
	if len(names) != 1 || names[0] != "name" {
		t.Fatalf("Names = %v, want [name]", names)
	}

	col, err := tbl.Column("name")
	if err != nil {
		t.Fatalf("Column(name): %v", err)
	}
	if col.Kind() != KindFloat {
		t.Errorf("surviving column kind = %s, want %s (the renamed one wins)", col.Kind(), KindFloat)
	}
}

func TestTable_CloneIsDeep(t *testing.T) {
	tbl := twoColumnTable(t)

	clone := tbl.Clone()

	col, _ := clone.Column("name")
	col.SetString(0, "changed")
	clone.Rename("score", "points")

	orig, _ := tbl.Column("name")
	if v, _ := orig.StringAt(0); v != "ann" {
		t.Errorf("original cell changed through clone: %q", v)
	}
	if !tbl.Has("score") {
		t.Error("original column renamed through clone")
	}
}
