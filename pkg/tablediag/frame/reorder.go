// Package frame implements the arrow record transforms behind table
// diagnostics: column reordering, ignore projection, type classification,
// and per-column value scans.
package frame

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

// Reorder returns a view of rec with columns rearranged as
// first ++ remaining (original order) ++ last.
//
// Unknown names in first or last fail with ErrColumnNotFound. A name listed
// in both first and last is placed twice, producing a duplicate column.
// Ignore lists play no part here; reordering and ignoring are separate
// stages.
func Reorder(rec arrow.Record, first, last []string) (arrow.Record, error) {
	schema := rec.Schema()

	pinned := make(map[string]bool, len(first)+len(last))
	for _, name := range first {
		pinned[name] = true
	}
	for _, name := range last {
		pinned[name] = true
	}

	indices := make([]int, 0, schema.NumFields())
	for _, name := range first {
		idx := schema.FieldIndices(name)
		if len(idx) == 0 {
			return nil, fmt.Errorf("%w: %q in first", models.ErrColumnNotFound, name)
		}
		indices = append(indices, idx[0])
	}
	for i, f := range schema.Fields() {
		if !pinned[f.Name] {
			indices = append(indices, i)
		}
	}
	for _, name := range last {
		idx := schema.FieldIndices(name)
		if len(idx) == 0 {
			return nil, fmt.Errorf("%w: %q in last", models.ErrColumnNotFound, name)
		}
		indices = append(indices, idx[0])
	}

	return Select(rec, indices), nil
}

// Drop returns rec without the named columns. Every name must exist in the
// record; unknown names are reported together in one ErrColumnNotFound.
func Drop(rec arrow.Record, names []string) (arrow.Record, error) {
	schema := rec.Schema()

	drop := make(map[string]bool, len(names))
	var missing []string
	for _, name := range names {
		if !schema.HasField(name) {
			missing = append(missing, fmt.Sprintf("%q", name))
			continue
		}
		drop[name] = true
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s in ignore", models.ErrColumnNotFound, strings.Join(missing, ", "))
	}

	indices := make([]int, 0, schema.NumFields())
	for i, f := range schema.Fields() {
		if !drop[f.Name] {
			indices = append(indices, i)
		}
	}
	return Select(rec, indices), nil
}

// Select builds a record holding the given columns of rec, in order. The
// column data is shared with rec, not copied.
func Select(rec arrow.Record, indices []int) arrow.Record {
	schema := rec.Schema()
	fields := make([]arrow.Field, len(indices))
	cols := make([]arrow.Array, len(indices))
	for i, idx := range indices {
		fields[i] = schema.Field(idx)
		cols[i] = rec.Column(idx)
	}
	return array.NewRecord(arrow.NewSchema(fields, nil), cols, rec.NumRows())
}
