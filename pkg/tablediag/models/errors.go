package models

import "errors"

// Common errors returned by the tablediag packages.
var (
	// ErrColumnNotFound is returned when a first, last, or ignore list
	// names a column the table does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyTable is returned when a percentage is requested over a
	// table with zero rows.
	ErrEmptyTable = errors.New("table has no rows")

	// ErrUnsupportedType is returned when a column's element type cannot
	// be classified into the diagnostic type enum.
	ErrUnsupportedType = errors.New("unsupported column type")
)
