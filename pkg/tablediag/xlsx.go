package tablediag

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

// AppendTable writes t into the spreadsheet at path as new worksheet
// columns, creating the file when it does not exist yet. Each block of the
// table lands in one worksheet column, the header on row 1 and the values
// stacked below it. Nil cells are left empty.
//
// Placement: with opts.AtColumn zero the first block lands right of the
// last used column; with AtColumn n >= 1 writing starts at column n, and
// existing cells in the target range are overwritten, never shifted. Each
// call reopens the file from disk, so repeated appends accumulate columns.
//
// Every failure is reported as a *WriteError wrapping the cause. Failures
// before the final save leave the file on disk untouched.
func AppendTable(t models.Table, path string, opts AppendOptions) error {
	sheet := opts.SheetName()

	f, created, err := openOrCreate(path, sheet)
	if err != nil {
		return NewWriteError(path, sheet, err)
	}
	defer f.Close()

	if !created {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return NewWriteError(path, sheet, err)
		}
		if idx < 0 {
			if _, err := f.NewSheet(sheet); err != nil {
				return NewWriteError(path, sheet, err)
			}
		}
	}

	start := opts.AtColumn
	if start < 1 {
		used, err := f.GetCols(sheet)
		if err != nil {
			return NewWriteError(path, sheet, err)
		}
		start = len(used) + 1
	}

	for j, block := range t.ColumnBlocks() {
		name, err := excelize.ColumnNumberToName(start + j)
		if err != nil {
			return NewWriteError(path, sheet, err)
		}
		for i, v := range block {
			if v == nil {
				continue
			}
			cell := fmt.Sprintf("%s%d", name, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return NewWriteError(path, sheet, err)
			}
		}
	}

	if opts.ShouldAutoFit() {
		if err := autoFit(f, sheet); err != nil {
			return NewWriteError(path, sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return NewWriteError(path, sheet, err)
	}
	return nil
}

// openOrCreate opens the workbook at path, or builds a fresh one whose
// first sheet carries the requested name. The second result reports
// whether the workbook was newly created.
func openOrCreate(path, sheet string) (*excelize.File, bool, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, err
	}

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			f.Close()
			return nil, false, err
		}
	}
	return f, true, nil
}

// autoFit sets the width of every used column on the sheet from its longest
// rendered cell: (length + 2) * 1.2 characters. Empty cells count as length
// zero.
func autoFit(f *excelize.File, sheet string) error {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return err
	}
	for i, col := range cols {
		maxLen := 0
		for _, cell := range col {
			if n := len([]rune(cell)); n > maxLen {
				maxLen = n
			}
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(maxLen+2)*1.2); err != nil {
			return err
		}
	}
	return nil
}
