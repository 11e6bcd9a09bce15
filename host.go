package outbind

// Host is the registration point of the runtime that owns the
// reactive graph and dispatches render and error events to
// registered bindings.
//
// The host is passed explicitly to NewBinding instead of being
// looked up in some ambient global state, so that a missing runtime
// fails fast at construction time.
type Host interface {
	// RegisterBinding registers binding under the passed unique name.
	// Registering a second binding under an already registered name
	// must return an error wrapping ErrBindingExists.
	RegisterBinding(name string, binding *Binding) error
}
