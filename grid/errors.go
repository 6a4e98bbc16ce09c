package grid

import (
	"errors"
	"fmt"
)

// ErrCorruptSource файл не разбирается как xls/xlsx
var ErrCorruptSource = errors.New("corrupt spreadsheet")

// ErrMissingWorksheet в книге нет нужного листа
var ErrMissingWorksheet = errors.New("missing worksheet")

// SourceError ошибка чтения книги с указанием формата
type SourceError struct {
	Format string // "xls", "xlsx" или "" если формат не определён
	Sheet  string
	Err    error
}

func (e *SourceError) Error() string {
	switch {
	case e.Sheet != "":
		return fmt.Sprintf("%s workbook, sheet %q: %v", e.Format, e.Sheet, e.Err)
	case e.Format != "":
		return fmt.Sprintf("%s workbook: %v", e.Format, e.Err)
	default:
		return fmt.Sprintf("workbook: %v", e.Err)
	}
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func corrupt(format string, cause error) error {
	return &SourceError{Format: format, Err: fmt.Errorf("%w: %v", ErrCorruptSource, cause)}
}
