package tablediag

import (
	"fmt"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

// Sentinel errors shared across the tablediag packages.
var (
	ErrColumnNotFound  = models.ErrColumnNotFound
	ErrEmptyTable      = models.ErrEmptyTable
	ErrUnsupportedType = models.ErrUnsupportedType
)

// WriteError reports a failure while appending a report to a spreadsheet
// file.
type WriteError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("report write error for %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path, sheet string, err error) *WriteError {
	return &WriteError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
