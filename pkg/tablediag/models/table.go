package models

// Column is a named sequence of cell values. A nil cell marks a missing
// value.
type Column struct {
	// Name is the column header.
	Name string `json:"name"`
	// Cells holds the column values in row order.
	Cells []any `json:"cells"`
}

// Table is an ordered collection of named columns sharing a row count.
// Every diagnostic result converts to a Table for spreadsheet output.
type Table struct {
	Columns []Column `json:"columns"`
}

// ColumnBlock is a worksheet column in stacked form: the header first,
// then the column's values.
type ColumnBlock []any

// ColumnBlocks renders the table column by column, each block carrying
// the header followed by that column's cells.
func (t Table) ColumnBlocks() []ColumnBlock {
	blocks := make([]ColumnBlock, len(t.Columns))
	for i, c := range t.Columns {
		block := make(ColumnBlock, 0, len(c.Cells)+1)
		block = append(block, c.Name)
		block = append(block, c.Cells...)
		blocks[i] = block
	}
	return blocks
}

// NumRows returns the length of the longest column.
func (t Table) NumRows() int {
	rows := 0
	for _, c := range t.Columns {
		if len(c.Cells) > rows {
			rows = len(c.Cells)
		}
	}
	return rows
}

// MissingTable converts missing-value rows into a Table.
func MissingTable(rows []MissingCount) Table {
	t := Table{Columns: []Column{
		{Name: "Column"}, {Name: "Missing Count"}, {Name: "Missing Percent"},
	}}
	for _, r := range rows {
		t.Columns[0].Cells = append(t.Columns[0].Cells, r.Column)
		t.Columns[1].Cells = append(t.Columns[1].Cells, r.Absolute)
		t.Columns[2].Cells = append(t.Columns[2].Cells, r.Percent)
	}
	return t
}

// TypesTable converts data-type rows into a Table.
func TypesTable(rows []TypeEntry) Table {
	t := Table{Columns: []Column{
		{Name: "Column"}, {Name: "Data Type"},
	}}
	for _, r := range rows {
		t.Columns[0].Cells = append(t.Columns[0].Cells, r.Column)
		t.Columns[1].Cells = append(t.Columns[1].Cells, string(r.Type))
	}
	return t
}

// UniqueTable converts unique-value rows into a Table.
func UniqueTable(rows []UniqueCount) Table {
	t := Table{Columns: []Column{
		{Name: "Column"}, {Name: "Unique Count"}, {Name: "Unique Percent"},
	}}
	for _, r := range rows {
		t.Columns[0].Cells = append(t.Columns[0].Cells, r.Column)
		t.Columns[1].Cells = append(t.Columns[1].Cells, r.Count)
		t.Columns[2].Cells = append(t.Columns[2].Cells, r.Percent)
	}
	return t
}

// MinMaxTable converts extremum rows into a Table.
func MinMaxTable(rows []Extremum) Table {
	t := Table{Columns: []Column{
		{Name: "Column"}, {Name: "Min"}, {Name: "Max"},
	}}
	for _, r := range rows {
		t.Columns[0].Cells = append(t.Columns[0].Cells, r.Column)
		t.Columns[1].Cells = append(t.Columns[1].Cells, r.Min)
		t.Columns[2].Cells = append(t.Columns[2].Cells, r.Max)
	}
	return t
}

// Table converts the combined report into a Table.
func (r Report) Table() Table {
	t := Table{Columns: []Column{
		{Name: "Column"}, {Name: "Data Type"},
		{Name: "Missing Count"}, {Name: "Missing Percent"},
		{Name: "Unique Count"}, {Name: "Unique Percent"},
		{Name: "Min"}, {Name: "Max"},
	}}
	for _, row := range r {
		t.Columns[0].Cells = append(t.Columns[0].Cells, row.Column)
		t.Columns[1].Cells = append(t.Columns[1].Cells, string(row.Type))
		t.Columns[2].Cells = append(t.Columns[2].Cells, row.MissingAbsolute)
		t.Columns[3].Cells = append(t.Columns[3].Cells, row.MissingPercent)
		t.Columns[4].Cells = append(t.Columns[4].Cells, row.UniqueCount)
		t.Columns[5].Cells = append(t.Columns[5].Cells, row.UniquePercent)
		t.Columns[6].Cells = append(t.Columns[6].Cells, row.Min)
		t.Columns[7].Cells = append(t.Columns[7].Cells, row.Max)
	}
	return t
}
