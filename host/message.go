package host

import (
	"encoding/json"
	"fmt"

	"github.com/domonda/go-types/charset"
)

// Message is one server-pushed event addressed to a single output.
//
// A message carries either a payload for a successful reactive
// computation or the error text of a failed one, never both.
type Message struct {
	// Output is the id of the managed element the message is for.
	Output string `json:"output"`

	// Payload is the raw render payload of a value message.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Error is the failure text of an error message.
	Error string `json:"error,omitempty"`
}

// IsError reports if the message signals a failed
// server-side computation.
func (m *Message) IsError() bool { return m.Error != "" }

// DecodeMessage unmarshals a wire message.
// A leading UTF-8 BOM is tolerated and stripped.
func DecodeMessage(raw []byte) (*Message, error) {
	raw = charset.TrimBOM(raw, charset.BOMUTF8)
	var msg Message
	err := json.Unmarshal(raw, &msg)
	if err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}
	if msg.Output == "" {
		return nil, fmt.Errorf("message without output id: %s", raw)
	}
	return &msg, nil
}
