package dom

import (
	"html/template"
	"io"
	"sort"
	"strings"
)

// Tags written without closing tag and without content.
var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// WriteHTML writes the element and its content as HTML.
//
// Attributes are written in deterministic order: id first, then class,
// then all remaining attributes sorted by name. Text content and
// attribute values are HTML escaped, content set via SetHTML is
// written verbatim.
func (e *Element) WriteHTML(w io.Writer) error {
	var b strings.Builder
	e.writeHTML(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the element serialized as HTML, see WriteHTML.
func (e *Element) String() string {
	var b strings.Builder
	e.writeHTML(&b)
	return b.String()
}

func (e *Element) writeHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	if id := e.ID(); id != "" {
		writeAttr(b, "id", id)
	}
	if len(e.classes) > 0 {
		writeAttr(b, "class", strings.Join(e.classes, " "))
	}
	for _, key := range sortedAttrKeys(e.attrs) {
		if key == "id" {
			continue
		}
		writeAttr(b, key, e.attrs[key])
	}
	b.WriteByte('>')
	if voidTags[e.tag] {
		return
	}
	switch {
	case e.rawHTML != "":
		b.WriteString(e.rawHTML)
	case len(e.children) > 0:
		for _, child := range e.children {
			child.writeHTML(b)
		}
	default:
		b.WriteString(template.HTMLEscapeString(e.text))
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(template.HTMLEscapeString(value))
	b.WriteByte('"')
}

func sortedAttrKeys(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
