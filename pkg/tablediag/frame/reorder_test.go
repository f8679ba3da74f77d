package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

func newTestRecord(t *testing.T) arrow.Record {
	t.Helper()

	pool := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
	}, nil)

	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"a", "b", "c"}, nil)
	b.Field(2).(*array.Float64Builder).AppendValues([]float64{10, 0, 30}, []bool{true, false, true})
	b.Field(3).(*array.BooleanBuilder).AppendValues([]bool{true, false, true}, nil)

	rec := b.NewRecord()
	t.Cleanup(rec.Release)
	return rec
}

func columnNames(rec arrow.Record) []string {
	names := make([]string, rec.NumCols())
	for i := range names {
		names[i] = rec.ColumnName(i)
	}
	return names
}

func TestReorderFirstLast(t *testing.T) {
	rec := newTestRecord(t)

	out, err := Reorder(rec, []string{"score"}, []string{"id"})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	defer out.Release()

	want := []string{"score", "name", "active", "id"}
	got := columnNames(out)
	if len(got) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Values travel with their columns.
	if v := Format(out.Column(0), 2); v != "30" {
		t.Errorf("Expected score[2] = 30, got %q", v)
	}
	if v := Format(out.Column(3), 0); v != "1" {
		t.Errorf("Expected id[0] = 1, got %q", v)
	}
}

func TestReorderNoPreferences(t *testing.T) {
	rec := newTestRecord(t)

	out, err := Reorder(rec, nil, nil)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	defer out.Release()

	want := []string{"id", "name", "score", "active"}
	for i, name := range columnNames(out) {
		if name != want[i] {
			t.Errorf("Column %d: expected %q, got %q", i, want[i], name)
		}
	}
}

func TestReorderUnknownColumn(t *testing.T) {
	rec := newTestRecord(t)

	if _, err := Reorder(rec, []string{"missing"}, nil); !errors.Is(err, models.ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound for first, got %v", err)
	}
	if _, err := Reorder(rec, nil, []string{"missing"}); !errors.Is(err, models.ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound for last, got %v", err)
	}
}

func TestReorderOverlapDuplicates(t *testing.T) {
	rec := newTestRecord(t)

	// A name in both first and last is placed twice.
	out, err := Reorder(rec, []string{"id"}, []string{"id"})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	defer out.Release()

	got := columnNames(out)
	want := []string{"id", "name", "score", "active", "id"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d columns, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDrop(t *testing.T) {
	rec := newTestRecord(t)

	out, err := Drop(rec, []string{"name", "active"})
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	defer out.Release()

	want := []string{"id", "score"}
	got := columnNames(out)
	if len(got) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDropUnknownColumns(t *testing.T) {
	rec := newTestRecord(t)

	_, err := Drop(rec, []string{"ghost", "name", "phantom"})
	if !errors.Is(err, models.ErrColumnNotFound) {
		t.Fatalf("Expected ErrColumnNotFound, got %v", err)
	}
	// All offenders are named.
	msg := err.Error()
	for _, name := range []string{"ghost", "phantom"} {
		if !strings.Contains(msg, name) {
			t.Errorf("Expected error to name %q, got %q", name, msg)
		}
	}
}
