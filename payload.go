package outbind

import (
	"encoding/json"
	"fmt"
)

// Payload is the server-to-client data message for one render event
// of a tabular output.
//
// The wire format is columnar: Columns holds the column names in
// display order, every row in Data holds the cell values positionally
// aligned to Columns, and TypeHints holds one coarse type category
// per column.
type Payload struct {
	Columns   []string   `json:"columns"`
	Data      [][]any    `json:"data"`
	TypeHints []TypeHint `json:"type_hints"`
}

// ParsePayload unmarshals and validates a wire payload.
// Invalid payloads are reported with an error wrapping ErrMalformedPayload.
func ParsePayload(data []byte) (*Payload, error) {
	var payload Payload
	err := json.Unmarshal(data, &payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	err = payload.Validate()
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// Validate checks the payload invariants:
// Columns must be present, every row of Data must have exactly one
// value per column, and TypeHints, when present, must have exactly
// one hint per column.
//
// Validation is eager: a payload is checked completely before any
// transformation instead of failing lazily on missing row values.
func (p *Payload) Validate() error {
	if p.Columns == nil {
		return fmt.Errorf("%w: missing columns", ErrMalformedPayload)
	}
	if p.TypeHints != nil && len(p.TypeHints) != len(p.Columns) {
		return fmt.Errorf("%w: %d type hints for %d columns", ErrMalformedPayload, len(p.TypeHints), len(p.Columns))
	}
	for i, row := range p.Data {
		if len(row) != len(p.Columns) {
			return fmt.Errorf("%w: row %d has %d values for %d columns", ErrMalformedPayload, i, len(row), len(p.Columns))
		}
	}
	return nil
}

// NumColumns returns the number of columns of the payload.
func (p *Payload) NumColumns() int { return len(p.Columns) }

// NumRows returns the number of data rows of the payload.
func (p *Payload) NumRows() int { return len(p.Data) }

// TypeHint names the coarse type category of one payload column.
//
// Historically the wire carried hints either as bare strings or as
// objects with a type field. Both shapes are accepted when
// unmarshalling, the object shape is canonical and used when
// marshalling.
type TypeHint struct {
	Type string `json:"type"`
}

// Numeric reports if the hint denotes a numeric column.
// Besides the "numeric" category the dtype names emitted by
// dataframe producers for numeric columns are recognized.
func (h TypeHint) Numeric() bool {
	switch h.Type {
	case "numeric", "number", "double", "decimal",
		"int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float16", "float32", "float64":
		return true
	}
	return false
}

// String implements the fmt.Stringer interface.
func (h TypeHint) String() string { return h.Type }

// UnmarshalJSON implements the json.Unmarshaler interface,
// accepting a bare string or an object with a type field.
func (h *TypeHint) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &h.Type)
	}
	type structHint TypeHint // prevent recursion
	return json.Unmarshal(data, (*structHint)(h))
}
