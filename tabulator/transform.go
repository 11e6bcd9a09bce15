package tabulator

import (
	"fmt"

	"github.com/outbind/go-outbind"
)

// ColumnDefs builds one column definition per payload column:
// title and field are the column name, cells of numeric columns
// are right aligned, all others left aligned.
func ColumnDefs(payload *outbind.Payload) []ColumnDef {
	defs := make([]ColumnDef, len(payload.Columns))
	for i, column := range payload.Columns {
		align := AlignLeft
		if i < len(payload.TypeHints) && payload.TypeHints[i].Numeric() {
			align = AlignRight
		}
		defs[i] = ColumnDef{Title: column, Field: column, HozAlign: align}
	}
	return defs
}

// RowObjects transforms the payload's positional rows into row
// objects keyed by column name, assigning keys in column order.
// Every row object has exactly one key per payload column.
//
// A row whose length disagrees with the number of columns is
// reported with an error wrapping outbind.ErrMalformedPayload.
func RowObjects(payload *outbind.Payload) ([]RowObject, error) {
	rows := make([]RowObject, len(payload.Data))
	for r, row := range payload.Data {
		if len(row) != len(payload.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", outbind.ErrMalformedPayload, r, len(row), len(payload.Columns))
		}
		obj := make(RowObject, len(payload.Columns))
		for i, column := range payload.Columns {
			obj[column] = row[i]
		}
		rows[r] = obj
	}
	return rows, nil
}
