// Package tabulator adapts the generic output-binding protocol to an
// interactive table widget: it transforms the columnar render payload
// into the row-object and column-definition shape the widget expects
// and (re)constructs the widget inside the managed element on every
// render.
package tabulator

import "github.com/outbind/go-outbind/dom"

// Layout vocabulary of the table widget.
const (
	// LayoutFitColumns fits the table to the width of its container.
	LayoutFitColumns = "fitColumns"
	// LayoutFitData sizes the table to fit its data.
	LayoutFitData = "fitData"
)

// Horizontal cell alignments.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// ColumnDef defines one column of the table widget.
type ColumnDef struct {
	// Title is the column header text, equal to the payload column name.
	Title string `json:"title"`
	// Field is the RowObject key the column reads its values from,
	// equal to the payload column name.
	Field string `json:"field"`
	// HozAlign is the horizontal alignment of the column's cells,
	// AlignRight for numeric columns, AlignLeft otherwise.
	HozAlign string `json:"hozAlign"`
}

// RowObject maps column names to the cell values of one row.
type RowObject map[string]any

// Options is the configuration a table widget is constructed with.
type Options struct {
	Data    []RowObject `json:"data"`
	Layout  string      `json:"layout"`
	Columns []ColumnDef `json:"columns"`
}

// Widget constructs an interactive table inside a managed element.
//
// Implementations must fully replace any content a previous
// construction left in the element, so that repeated construction
// against the same element shows only the new data.
type Widget interface {
	Construct(element *dom.Element, opts Options) (Handle, error)
}

// Handle is the live table a Widget constructed.
type Handle interface {
	// Element returns the managed element hosting the table.
	Element() *dom.Element
	// NumRows returns the number of rendered data rows.
	NumRows() int
}
