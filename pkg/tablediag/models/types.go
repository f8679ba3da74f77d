// Package models defines the result types produced by table diagnostics.
package models

// ColumnType classifies a column's declared element type.
type ColumnType string

const (
	TypeInteger     ColumnType = "integer"
	TypeFloat       ColumnType = "float"
	TypeBoolean     ColumnType = "boolean"
	TypeText        ColumnType = "text"
	TypeDatetime    ColumnType = "datetime"
	TypeCategorical ColumnType = "categorical"
	TypeOther       ColumnType = "other"
)

// IsNumeric reports whether min/max are defined for the type.
func (t ColumnType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// NotNumeric is the value carried in Min and Max for non-numeric columns.
const NotNumeric = "Not numeric"

// MissingCount reports the missing cells of one column.
type MissingCount struct {
	// Column is the column name.
	Column string `json:"column"`
	// Absolute is the number of missing cells.
	Absolute int64 `json:"absolute"`
	// Percent is Absolute relative to the row count, in [0, 100].
	Percent float64 `json:"percent"`
}

// TypeEntry reports the classified type of one column.
type TypeEntry struct {
	// Column is the column name.
	Column string `json:"column"`
	// Type is the classification of the column's element type.
	Type ColumnType `json:"type"`
}

// UniqueCount reports the distinct values of one column.
type UniqueCount struct {
	// Column is the column name.
	Column string `json:"column"`
	// Count is the number of distinct values, never above the row count.
	Count int64 `json:"count"`
	// Percent is Count relative to the row count, in [0, 100].
	Percent float64 `json:"percent"`
}

// Extremum reports the smallest and largest non-missing value of one column.
// Min and Max carry NotNumeric for non-numeric columns, and nil when a
// numeric column has no non-missing values.
type Extremum struct {
	// Column is the column name.
	Column string `json:"column"`
	Min    any    `json:"min"`
	Max    any    `json:"max"`
}

// ColumnReport is one combined row of the diagnostic report.
type ColumnReport struct {
	// Column is the column name.
	Column string `json:"column"`
	// Type is the classification of the column's element type.
	Type ColumnType `json:"data_type"`
	// MissingAbsolute is the number of missing cells.
	MissingAbsolute int64 `json:"missing_count"`
	// MissingPercent is MissingAbsolute relative to the row count.
	MissingPercent float64 `json:"missing_percent"`
	// UniqueCount is the number of distinct values.
	UniqueCount int64 `json:"unique_count"`
	// UniquePercent is UniqueCount relative to the row count.
	UniquePercent float64 `json:"unique_percent"`
	// Min and Max follow the Extremum conventions.
	Min any `json:"min"`
	Max any `json:"max"`
}

// Report is the combined diagnostic, one entry per surviving column in
// table order.
type Report []ColumnReport
