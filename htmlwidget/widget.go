// Package htmlwidget implements the tabulator.Widget contract with a
// plain HTML table built in the managed element's subtree.
//
// It serves as reference widget for the table output binding: every
// construction fully replaces the element's previous content, column
// alignment follows the column definitions, and raw HTML cell output
// is sanitized before it is written into the tree.
package htmlwidget

import (
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/outbind/go-outbind/dom"
	"github.com/outbind/go-outbind/tabulator"
)

// TableClass is the CSS class of the constructed table element.
const TableClass = "tabulator"

// Ensure Widget satisfies the widget constructor contract
var _ tabulator.Widget = new(Widget)

// Widget constructs HTML tables inside managed elements.
//
// A Widget is immutable, the With methods return modified copies,
// so a configured Widget can be shared between bindings.
type Widget struct {
	tableClass       string
	columnFormatters map[string]CellFormatter
	nilValue         string
	sanitizer        *bluemonday.Policy
}

// NewWidget returns a Widget that sanitizes raw HTML cell output
// with the bluemonday UGC policy.
func NewWidget() *Widget {
	return &Widget{sanitizer: bluemonday.UGCPolicy()}
}

func (w *Widget) cloneOrNew() *Widget {
	mod := new(Widget)
	if w != nil {
		*mod = *w
	}
	// Clone columnFormatters
	formatters := make(map[string]CellFormatter, len(mod.columnFormatters)+1)
	for field, formatter := range mod.columnFormatters {
		formatters[field] = formatter
	}
	mod.columnFormatters = formatters
	return mod
}

// WithTableClass returns a copy of the widget that adds tableClass
// to the constructed table element in addition to TableClass.
func (w *Widget) WithTableClass(tableClass string) *Widget {
	mod := w.cloneOrNew()
	mod.tableClass = tableClass
	return mod
}

// WithNilValue returns a copy of the widget that renders value
// as cell text for nil and missing row object values.
func (w *Widget) WithNilValue(value string) *Widget {
	mod := w.cloneOrNew()
	mod.nilValue = value
	return mod
}

// WithColumnFormatter returns a copy of the widget that formats
// cells of the column with the passed field using formatter.
func (w *Widget) WithColumnFormatter(field string, formatter CellFormatter) *Widget {
	mod := w.cloneOrNew()
	mod.columnFormatters[field] = formatter
	return mod
}

// WithSanitizer returns a copy of the widget that sanitizes raw HTML
// cell output with policy. A nil policy disables sanitization.
func (w *Widget) WithSanitizer(policy *bluemonday.Policy) *Widget {
	mod := w.cloneOrNew()
	mod.sanitizer = policy
	return mod
}

// Construct builds an HTML table from opts as the only content of
// element, fully replacing the content of any previous construction.
//
// The table carries TableClass, the widget's additional table class,
// and the layout as data-layout attribute. Column alignments are
// written as text-align styles on the header and data cells.
func (w *Widget) Construct(element *dom.Element, opts tabulator.Options) (tabulator.Handle, error) {
	if element == nil {
		return nil, errors.New("no element to construct table in")
	}
	table := dom.NewElement("table").AddClass(TableClass)
	if w.tableClass != "" {
		table.AddClass(w.tableClass)
	}
	if opts.Layout != "" {
		table.SetAttr("data-layout", opts.Layout)
	}

	headRow := table.AppendChild(dom.NewElement("thead")).AppendChild(dom.NewElement("tr"))
	for _, col := range opts.Columns {
		th := headRow.AppendChild(dom.NewElement("th"))
		alignCell(th, col)
		th.SetText(col.Title)
	}

	body := table.AppendChild(dom.NewElement("tbody"))
	for rowIndex, row := range opts.Data {
		tr := body.AppendChild(dom.NewElement("tr"))
		for _, col := range opts.Columns {
			td := tr.AppendChild(dom.NewElement("td"))
			alignCell(td, col)
			str, raw, err := w.formatCell(&Cell{Row: rowIndex, Field: col.Field, Value: row[col.Field]})
			if err != nil {
				return nil, fmt.Errorf("formatting column %q of row %d: %w", col.Field, rowIndex, err)
			}
			if raw {
				td.SetHTML(w.sanitize(str))
			} else {
				td.SetText(str)
			}
		}
	}

	element.ReplaceChildren(table)
	return &handle{element: element, numRows: len(opts.Data)}, nil
}

func (w *Widget) formatCell(cell *Cell) (str string, raw bool, err error) {
	if formatter, ok := w.columnFormatters[cell.Field]; ok {
		str, raw, err = formatter.FormatCell(cell)
		if !errors.Is(err, ErrNotSupported) {
			return str, raw, err
		}
	}
	if cell.Value == nil {
		return w.nilValue, false, nil
	}
	return fmt.Sprint(cell.Value), false, nil
}

func (w *Widget) sanitize(html string) string {
	if w.sanitizer == nil {
		return html
	}
	return w.sanitizer.Sanitize(html)
}

func alignCell(cell *dom.Element, col tabulator.ColumnDef) {
	if col.HozAlign != "" {
		cell.SetAttr("style", "text-align: "+col.HozAlign)
	}
}

type handle struct {
	element *dom.Element
	numRows int
}

func (h *handle) Element() *dom.Element { return h.element }
func (h *handle) NumRows() int          { return h.numRows }
