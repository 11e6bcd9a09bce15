package tabulator

import (
	"errors"
	"fmt"

	"github.com/outbind/go-outbind"
	"github.com/outbind/go-outbind/dom"
)

// Defaults used by NewAdapter.
const (
	// DefaultName is the binding name an Adapter registers under.
	DefaultName = "tabulator"
	// DefaultElementClass marks the elements the binding manages.
	DefaultElementClass = "tabulator-output"
)

// Adapter configures the table output binding around a Widget.
//
// An Adapter is immutable, the With methods return modified copies.
type Adapter struct {
	widget       Widget
	name         string
	elementClass string
	layout       string
}

// NewAdapter returns an Adapter for the passed widget with
// DefaultName, DefaultElementClass, and the LayoutFitColumns layout.
func NewAdapter(widget Widget) *Adapter {
	return &Adapter{
		widget:       widget,
		name:         DefaultName,
		elementClass: DefaultElementClass,
		layout:       LayoutFitColumns,
	}
}

// WithName returns a copy of the adapter registering under name.
func (a *Adapter) WithName(name string) *Adapter {
	mod := new(Adapter)
	*mod = *a
	mod.name = name
	return mod
}

// WithElementClass returns a copy of the adapter managing elements
// marked with elementClass.
func (a *Adapter) WithElementClass(elementClass string) *Adapter {
	mod := new(Adapter)
	*mod = *a
	mod.elementClass = elementClass
	return mod
}

// WithLayout returns a copy of the adapter constructing widgets
// with the passed layout.
func (a *Adapter) WithLayout(layout string) *Adapter {
	mod := new(Adapter)
	*mod = *a
	mod.layout = layout
	return mod
}

// Name returns the binding name the adapter registers under.
func (a *Adapter) Name() string { return a.name }

// Bind creates the table output binding and registers it with host.
func (a *Adapter) Bind(host outbind.Host) (*outbind.Binding, error) {
	if a.widget == nil {
		return nil, errors.New("adapter needs a widget to construct tables with")
	}
	return outbind.NewBinding(host, outbind.Config{
		Name:         a.name,
		ElementClass: a.elementClass,
		Render:       a.Render,
	})
}

// Render is the binding's render callback: it validates the payload,
// transforms it into row objects and column definitions, and
// constructs the adapter's widget inside element, fully replacing
// whatever a previous render left there.
func (a *Adapter) Render(element *dom.Element, payload *outbind.Payload) error {
	err := payload.Validate()
	if err != nil {
		return err
	}
	rows, err := RowObjects(payload)
	if err != nil {
		return err
	}
	_, err = a.widget.Construct(element, Options{
		Data:    rows,
		Layout:  a.layout,
		Columns: ColumnDefs(payload),
	})
	if err != nil {
		return fmt.Errorf("constructing table widget: %w", err)
	}
	return nil
}
