package outbind

import "errors"

var (
	// ErrHostUnavailable is returned by NewBinding when no host
	// runtime is available as registration point.
	ErrHostUnavailable = errors.New("host runtime unavailable")

	// ErrMalformedPayload is returned for payloads that are missing
	// required fields or violate the payload invariants.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrBindingExists is returned when registering a binding
	// under a name that is already registered.
	ErrBindingExists = errors.New("binding already registered")
)
