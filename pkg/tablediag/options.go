// Package tablediag computes per-column summary diagnostics for arrow
// record tables and appends the results to spreadsheet files.
package tablediag

// Options configures how a Diagnoser arranges and filters a table.
type Options struct {
	// First columns are moved to the front of the table, in the order given.
	First []string
	// Last columns are moved to the end of the table, in the order given.
	Last []string
	// Ignore columns stay in the reordered table but are excluded from
	// every diagnostic.
	Ignore []string
}

// DefaultOptions returns options that leave the table untouched.
func DefaultOptions() Options {
	return Options{}
}

// AppendOptions configures AppendTable.
type AppendOptions struct {
	// Sheet is the worksheet the table is appended to.
	// Defaults to "Sheet1" when empty.
	Sheet string
	// AtColumn is the 1-based leftmost worksheet column to write at.
	// Zero appends after the last used column. Existing cells in the
	// target range are overwritten, never shifted.
	AtColumn int
	// AutoFit controls column-width recalculation after the append.
	// If nil, defaults to true.
	AutoFit *bool
}

// DefaultAppendOptions returns default append options.
func DefaultAppendOptions() AppendOptions {
	return AppendOptions{Sheet: "Sheet1"}
}

// SheetName returns the target worksheet name.
func (o AppendOptions) SheetName() string {
	if o.Sheet == "" {
		return "Sheet1"
	}
	return o.Sheet
}

// ShouldAutoFit reports whether column widths are recalculated.
func (o AppendOptions) ShouldAutoFit() bool {
	if o.AutoFit != nil {
		return *o.AutoFit
	}
	return true
}
