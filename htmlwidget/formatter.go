package htmlwidget

import (
	"errors"
	"fmt"
)

// ErrNotSupported is returned by CellFormatter implementations that
// do not support the value of the passed cell, letting the widget
// fall through to its default formatting.
var ErrNotSupported = errors.New("formatting not supported")

// Cell is one table cell passed to a CellFormatter.
type Cell struct {
	// Row is the zero based data row index.
	Row int
	// Field is the column field the cell belongs to.
	Field string
	// Value is the cell value from the row object,
	// nil when the row object has no value for the field.
	Value any
}

// CellFormatter formats cell values as strings.
type CellFormatter interface {
	// FormatCell formats a cell as string or returns a wrapped
	// ErrNotSupported error if it doesn't support the cell's value.
	// The raw result indicates that the string is HTML markup that
	// should be written into the cell after sanitization instead
	// of being escaped as text.
	FormatCell(cell *Cell) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(cell *Cell) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(cell *Cell) (str string, raw bool, err error) {
	return f(cell)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(cell *Cell) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), cell.Value), false, nil
}

// PrintfRawCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
// The result will be indicated to be raw HTML.
type PrintfRawCellFormatter string

func (format PrintfRawCellFormatter) FormatCell(cell *Cell) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), cell.Value), true, nil
}
