// Package outbind implements the output-binding protocol of a
// server-driven reactive UI: named bindings discover the elements they
// manage by class, receive one payload per reactive invalidation, and
// surface or clear error states on the managed element.
//
// A binding is created once from a Config and registered with a Host,
// the runtime that owns the reactive graph and dispatches render and
// error events:
//
//	binding, err := outbind.NewBinding(host, outbind.Config{
//		Name:   "tabulator",
//		Render: renderTable,
//	})
//
// The Host drives the binding through its Find, RenderValue,
// RenderError, and ClearError methods. See the host package for an
// in-process Host implementation and the tabulator package for a
// binding that renders tabular payloads with a table widget.
package outbind
