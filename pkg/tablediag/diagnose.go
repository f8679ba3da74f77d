package tablediag

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/mvaldes/tablediag/pkg/tablediag/frame"
	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

// ReorderColumns rearranges rec's columns as first ++ remaining ++ last
// without touching any cell values. See frame.Reorder for the placement
// rules.
func ReorderColumns(rec arrow.Record, first, last []string) (arrow.Record, error) {
	return frame.Reorder(rec, first, last)
}

// Diagnoser computes per-column summaries of an arrow record.
//
// The record is reordered once at construction. The ignore list is applied
// by each diagnostic separately, so Record still exposes ignored columns.
// Diagnosers hold no other state; repeated calls on an unchanged record
// produce identical results.
type Diagnoser struct {
	rec    arrow.Record
	ignore []string
}

// New reorders rec according to opts and returns a Diagnoser over the
// result. Unknown names in opts.First or opts.Last fail with
// ErrColumnNotFound; the ignore list is validated lazily by the
// diagnostics.
func New(rec arrow.Record, opts Options) (*Diagnoser, error) {
	sorted, err := frame.Reorder(rec, opts.First, opts.Last)
	if err != nil {
		return nil, err
	}
	return &Diagnoser{rec: sorted, ignore: opts.Ignore}, nil
}

// Record returns the reordered record, with ignored columns still present.
func (d *Diagnoser) Record() arrow.Record {
	return d.rec
}

// view projects out the ignored columns. Each diagnostic builds its own
// view; there is no shared intermediate state between them.
func (d *Diagnoser) view() (arrow.Record, error) {
	return frame.Drop(d.rec, d.ignore)
}

// MissingValues counts the missing cells of every surviving column. It
// fails with ErrEmptyTable when the record has no rows, since the
// percentage is undefined there.
func (d *Diagnoser) MissingValues() ([]models.MissingCount, error) {
	rec, err := d.view()
	if err != nil {
		return nil, err
	}
	rows := rec.NumRows()
	if rows == 0 {
		return nil, fmt.Errorf("%w: missing-value percentages are undefined", models.ErrEmptyTable)
	}

	out := make([]models.MissingCount, rec.NumCols())
	for i := range out {
		abs := int64(rec.Column(i).NullN())
		out[i] = models.MissingCount{
			Column:   rec.ColumnName(i),
			Absolute: abs,
			Percent:  float64(abs) / float64(rows) * 100,
		}
	}
	return out, nil
}

// DataTypes classifies every surviving column from its declared arrow
// element type; values are never inspected.
func (d *Diagnoser) DataTypes() ([]models.TypeEntry, error) {
	rec, err := d.view()
	if err != nil {
		return nil, err
	}

	out := make([]models.TypeEntry, rec.NumCols())
	for i := range out {
		ct, err := frame.Classify(rec.Column(i).DataType())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", rec.ColumnName(i), err)
		}
		out[i] = models.TypeEntry{Column: rec.ColumnName(i), Type: ct}
	}
	return out, nil
}

// UniqueValues counts the distinct values of every surviving column.
// Missing values contribute one extra distinct slot when present, keeping
// the counts consistent with MissingValues. It fails with ErrEmptyTable
// when the record has no rows.
func (d *Diagnoser) UniqueValues() ([]models.UniqueCount, error) {
	rec, err := d.view()
	if err != nil {
		return nil, err
	}
	rows := rec.NumRows()
	if rows == 0 {
		return nil, fmt.Errorf("%w: unique-value percentages are undefined", models.ErrEmptyTable)
	}

	out := make([]models.UniqueCount, rec.NumCols())
	for i := range out {
		count := frame.Distinct(rec.Column(i))
		out[i] = models.UniqueCount{
			Column:  rec.ColumnName(i),
			Count:   count,
			Percent: float64(count) / float64(rows) * 100,
		}
	}
	return out, nil
}

// MinMax reports the extrema of every surviving numeric column. Non-numeric
// columns carry the NotNumeric sentinel in both fields; a numeric column
// whose values are all missing carries nil in both.
func (d *Diagnoser) MinMax() ([]models.Extremum, error) {
	rec, err := d.view()
	if err != nil {
		return nil, err
	}

	out := make([]models.Extremum, rec.NumCols())
	for i := range out {
		col := rec.Column(i)
		ct, err := frame.Classify(col.DataType())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", rec.ColumnName(i), err)
		}
		if !ct.IsNumeric() {
			out[i] = models.Extremum{
				Column: rec.ColumnName(i),
				Min:    models.NotNumeric,
				Max:    models.NotNumeric,
			}
			continue
		}
		lo, hi := frame.MinMax(col)
		out[i] = models.Extremum{Column: rec.ColumnName(i), Min: lo, Max: hi}
	}
	return out, nil
}

// Diagnose combines the four diagnostics into one report, one entry per
// surviving column in reordered order. The sub-results are joined on
// column name; a name absent from a sub-result (impossible under the shared
// ignore filtering, but guarded anyway) leaves zero counts and nil extrema.
// The report either covers every surviving column or the call fails as a
// whole.
func (d *Diagnoser) Diagnose() (models.Report, error) {
	types, err := d.DataTypes()
	if err != nil {
		return nil, err
	}
	missing, err := d.MissingValues()
	if err != nil {
		return nil, err
	}
	unique, err := d.UniqueValues()
	if err != nil {
		return nil, err
	}
	extrema, err := d.MinMax()
	if err != nil {
		return nil, err
	}

	typeByName := make(map[string]models.TypeEntry, len(types))
	for _, r := range types {
		typeByName[r.Column] = r
	}
	missingByName := make(map[string]models.MissingCount, len(missing))
	for _, r := range missing {
		missingByName[r.Column] = r
	}
	uniqueByName := make(map[string]models.UniqueCount, len(unique))
	for _, r := range unique {
		uniqueByName[r.Column] = r
	}
	extremumByName := make(map[string]models.Extremum, len(extrema))
	for _, r := range extrema {
		extremumByName[r.Column] = r
	}

	rec, err := d.view()
	if err != nil {
		return nil, err
	}

	report := make(models.Report, rec.NumCols())
	for i := range report {
		name := rec.ColumnName(i)
		entry := models.ColumnReport{Column: name}
		if r, ok := typeByName[name]; ok {
			entry.Type = r.Type
		}
		if r, ok := missingByName[name]; ok {
			entry.MissingAbsolute = r.Absolute
			entry.MissingPercent = r.Percent
		}
		if r, ok := uniqueByName[name]; ok {
			entry.UniqueCount = r.Count
			entry.UniquePercent = r.Percent
		}
		if r, ok := extremumByName[name]; ok {
			entry.Min = r.Min
			entry.Max = r.Max
		}
		report[i] = entry
	}
	return report, nil
}
