// Package host provides an in-process implementation of the host
// runtime side of the output-binding protocol: a binding registry
// plus a dispatcher that turns server-pushed messages into render,
// error, and clear-error calls on the registered bindings.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/outbind/go-outbind"
	"github.com/outbind/go-outbind/dom"
)

// Ensure Runtime can be passed to outbind.NewBinding
var _ outbind.Host = new(Runtime)

// Runtime dispatches server-pushed messages to registered bindings.
//
// For every managed element the runtime guarantees that events are
// handled in the order the messages arrive and that handling of one
// event completes before the next begins. A Runtime is not safe for
// concurrent use, all methods must be called from a single
// event-processing goroutine, see Serve.
type Runtime struct {
	scope    *dom.Element
	bindings []*outbind.Binding
	names    map[string]*outbind.Binding
	errored  map[string]bool
}

// NewRuntime returns a Runtime that discovers managed elements
// within the subtree of scope.
func NewRuntime(scope *dom.Element) *Runtime {
	return &Runtime{
		scope:   scope,
		names:   make(map[string]*outbind.Binding),
		errored: make(map[string]bool),
	}
}

// Scope returns the element subtree root the runtime
// discovers managed elements in.
func (r *Runtime) Scope() *dom.Element { return r.scope }

// RegisterBinding registers binding under the passed unique name.
// Registering a second binding under an already registered name
// returns an error wrapping outbind.ErrBindingExists.
func (r *Runtime) RegisterBinding(name string, binding *outbind.Binding) error {
	if binding == nil {
		return fmt.Errorf("can't register nil binding as %q", name)
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("%w: %q", outbind.ErrBindingExists, name)
	}
	r.names[name] = binding
	r.bindings = append(r.bindings, binding)
	return nil
}

// NumBindings returns the number of registered bindings.
func (r *Runtime) NumBindings() int { return len(r.bindings) }

// DispatchRaw decodes a wire message and dispatches it, see Dispatch.
func (r *Runtime) DispatchRaw(raw []byte) error {
	msg, err := DecodeMessage(raw)
	if err != nil {
		return err
	}
	return r.Dispatch(msg)
}

// Dispatch routes one message to the managed element it addresses.
//
// The element is discovered fresh for every message via the
// bindings' Find method, in binding registration order.
//
// An error message invokes the binding's RenderError.
// A value message first invokes ClearError if the output showed an
// error before, then RenderValue. A payload that does not decode or
// a RenderValue that fails is surfaced through RenderError on the
// element instead of being returned, so the next valid payload can
// clear it again.
//
// Dispatch returns an error only for protocol level failures,
// currently only when no managed element matches the message's
// output id.
func (r *Runtime) Dispatch(msg *Message) error {
	binding, element, err := r.lookupOutput(msg.Output)
	if err != nil {
		return err
	}
	if msg.IsError() {
		binding.RenderError(element, errors.New(msg.Error))
		r.errored[msg.Output] = true
		return nil
	}
	payload, err := outbind.ParsePayload(msg.Payload)
	if err != nil {
		binding.RenderError(element, err)
		r.errored[msg.Output] = true
		return nil
	}
	if r.errored[msg.Output] {
		binding.ClearError(element)
		delete(r.errored, msg.Output)
	}
	err = binding.RenderValue(element, payload)
	if err != nil {
		binding.RenderError(element, err)
		r.errored[msg.Output] = true
	}
	return nil
}

// Serve dispatches messages sequentially until the channel is closed
// or the context is canceled.
func (r *Runtime) Serve(ctx context.Context, messages <-chan Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			err := r.Dispatch(&msg)
			if err != nil {
				return err
			}
		}
	}
}

func (r *Runtime) lookupOutput(id string) (*outbind.Binding, *dom.Element, error) {
	for _, binding := range r.bindings {
		for _, element := range binding.Find(r.scope) {
			if element.ID() == id {
				return binding, element, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("no managed element with id %q", id)
}
