package outbind

import (
	"errors"
	"fmt"

	"github.com/outbind/go-outbind/dom"
)

// ErrorClass is the CSS class that the default error handling
// adds to a managed element while it shows an error.
const ErrorClass = "outbind-output-error"

// RenderFunc renders one payload into a managed element.
// A returned error signals a failed render, the host decides
// how it is surfaced.
type RenderFunc func(element *dom.Element, payload *Payload) error

// RenderErrorFunc shows a server-side computation failure
// on a managed element.
type RenderErrorFunc func(element *dom.Element, err error)

// ClearErrorFunc removes a previously shown failure
// from a managed element.
type ClearErrorFunc func(element *dom.Element)

// Config configures a new output binding.
// It is copied by NewBinding and immutable after registration.
type Config struct {
	// Name uniquely identifies the binding within a host.
	Name string

	// ElementClass is the CSS class that marks elements managed
	// by this binding. Defaults to Name.
	ElementClass string

	// Render is called once per payload for every managed element.
	Render RenderFunc

	// RenderError fully replaces the default error display
	// when not nil. The default adds ErrorClass to the element
	// and replaces its text with "Error rendering <Name>".
	RenderError RenderErrorFunc

	// ClearError fully replaces the default error clearing
	// when not nil. The default removes ErrorClass and
	// clears the element's text.
	ClearError ClearErrorFunc
}

// Binding is a registered output binding pairing a DOM discovery rule
// with render, error, and clear-error callbacks.
//
// The host drives a binding exclusively through Find, RenderValue,
// RenderError, and ClearError. All callbacks are synchronous and are
// invoked from the host's single event-processing goroutine.
type Binding struct {
	name         string
	elementClass string
	render       RenderFunc
	renderError  RenderErrorFunc
	clearError   ClearErrorFunc
}

// NewBinding creates an output binding from config and registers it
// with host under config.Name.
//
// NewBinding returns an error wrapping ErrHostUnavailable when host
// is nil, and the host's registration error when the name is already
// taken. In every error case no binding is registered and none is
// returned, there is no partially constructed state.
func NewBinding(host Host, config Config) (*Binding, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: can't register binding %q", ErrHostUnavailable, config.Name)
	}
	if config.Name == "" {
		return nil, errors.New("binding config needs a Name")
	}
	if config.Render == nil {
		return nil, fmt.Errorf("binding %q config needs a Render callback", config.Name)
	}
	b := &Binding{
		name:         config.Name,
		elementClass: config.ElementClass,
		render:       config.Render,
		renderError:  config.RenderError,
		clearError:   config.ClearError,
	}
	if b.elementClass == "" {
		b.elementClass = config.Name
	}
	err := host.RegisterBinding(b.name, b)
	if err != nil {
		return nil, fmt.Errorf("registering binding %q: %w", b.name, err)
	}
	return b, nil
}

// Name returns the unique name the binding is registered under.
func (b *Binding) Name() string { return b.name }

// ElementClass returns the CSS class that marks elements
// managed by the binding.
func (b *Binding) ElementClass() string { return b.elementClass }

// Find returns the descendants of scope that the binding manages,
// identified by membership in the binding's element class.
//
// The scope is searched anew on every call so elements added or
// removed since the last call are reflected in the result.
func (b *Binding) Find(scope *dom.Element) []*dom.Element {
	if scope == nil {
		return nil
	}
	return scope.FindByClass(b.elementClass)
}

// RenderValue renders payload into element by calling the configured
// Render callback. The callback's error is passed through unchanged,
// containment is the host's responsibility.
func (b *Binding) RenderValue(element *dom.Element, payload *Payload) error {
	return b.render(element, payload)
}

// RenderError shows err on element, using the configured RenderError
// callback or the default error display.
func (b *Binding) RenderError(element *dom.Element, err error) {
	if b.renderError != nil {
		b.renderError(element, err)
		return
	}
	element.AddClass(ErrorClass)
	element.SetText("Error rendering " + b.name)
}

// ClearError removes a previously shown error from element, using the
// configured ClearError callback or the default error clearing.
func (b *Binding) ClearError(element *dom.Element) {
	if b.clearError != nil {
		b.clearError(element)
		return
	}
	element.RemoveClass(ErrorClass)
	element.SetText("")
}
