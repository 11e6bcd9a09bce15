package host

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outbind/go-outbind"
	"github.com/outbind/go-outbind/dom"
)

// renderCall records one Render invocation of a test binding.
type renderCall struct {
	elementID string
	payload   *outbind.Payload
}

func newTestBinding(t *testing.T, runtime *Runtime, name string, calls *[]renderCall, renderErr *error) *outbind.Binding {
	t.Helper()
	binding, err := outbind.NewBinding(runtime, outbind.Config{
		Name: name,
		Render: func(element *dom.Element, payload *outbind.Payload) error {
			*calls = append(*calls, renderCall{elementID: element.ID(), payload: payload})
			if renderErr != nil {
				return *renderErr
			}
			return nil
		},
	})
	require.NoError(t, err)
	return binding
}

func valueMessage(t *testing.T, output string, payload string) *Message {
	t.Helper()
	return &Message{Output: output, Payload: json.RawMessage(payload)}
}

func TestRuntimeRegisterBinding(t *testing.T) {
	runtime := NewRuntime(dom.NewElement("body"))

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)
	require.Equal(t, 1, runtime.NumBindings())

	// Property: a second registration under the same name is rejected
	_, err := outbind.NewBinding(runtime, outbind.Config{
		Name:   "my-output",
		Render: func(*dom.Element, *outbind.Payload) error { return nil },
	})
	require.ErrorIs(t, err, outbind.ErrBindingExists)
	require.Equal(t, 1, runtime.NumBindings())

	require.Error(t, runtime.RegisterBinding("nil-binding", nil))
}

func TestRuntimeDispatchValue(t *testing.T) {
	scope := dom.NewElement("body")
	scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	msg := valueMessage(t, "out1", `{"columns":["name","mpg"],"data":[["Mazda RX4",21.0]],"type_hints":["character","numeric"]}`)
	require.NoError(t, runtime.Dispatch(msg))
	require.Len(t, calls, 1)
	require.Equal(t, "out1", calls[0].elementID)
	require.Equal(t, []string{"name", "mpg"}, calls[0].payload.Columns)

	// One render callback invocation per message
	require.NoError(t, runtime.Dispatch(msg))
	require.Len(t, calls, 2)
}

func TestRuntimeDispatchUnknownOutput(t *testing.T) {
	runtime := NewRuntime(dom.NewElement("body"))
	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	err := runtime.Dispatch(valueMessage(t, "nowhere", `{"columns":[],"data":[]}`))
	require.Error(t, err)
	require.Empty(t, calls)
}

func TestRuntimeDiscoversElementsFresh(t *testing.T) {
	scope := dom.NewElement("body")
	runtime := NewRuntime(scope)
	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	// Element does not exist yet
	msg := valueMessage(t, "out1", `{"columns":["a"],"data":[[1]]}`)
	require.Error(t, runtime.Dispatch(msg))

	// Added between two dispatches it is discovered without re-registration
	scope.AppendChild(dom.NewDiv("out1", "my-output"))
	require.NoError(t, runtime.Dispatch(msg))
	require.Len(t, calls, 1)
}

func TestRuntimeErrorLifecycle(t *testing.T) {
	scope := dom.NewElement("body")
	element := scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	// Server-side computation failure
	require.NoError(t, runtime.Dispatch(&Message{Output: "out1", Error: "computation failed"}))
	require.True(t, element.HasClass(outbind.ErrorClass))
	require.Equal(t, "Error rendering my-output", element.Text())
	require.Empty(t, calls)

	// Next valid payload clears the error state before rendering
	require.NoError(t, runtime.Dispatch(valueMessage(t, "out1", `{"columns":["a"],"data":[[1]]}`)))
	require.False(t, element.HasClass(outbind.ErrorClass))
	require.Len(t, calls, 1)
}

func TestRuntimeMalformedPayloadSurfacesAsError(t *testing.T) {
	scope := dom.NewElement("body")
	element := scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	// Row length mismatch: surfaced on the element, not returned
	err := runtime.Dispatch(valueMessage(t, "out1", `{"columns":["a","b"],"data":[[1]]}`))
	require.NoError(t, err)
	require.True(t, element.HasClass(outbind.ErrorClass))
	require.Empty(t, calls, "render must not be called for a malformed payload")

	// Recovery with a valid payload
	require.NoError(t, runtime.Dispatch(valueMessage(t, "out1", `{"columns":["a","b"],"data":[[1,2]]}`)))
	require.False(t, element.HasClass(outbind.ErrorClass))
	require.Len(t, calls, 1)
}

func TestRuntimeRenderFailureSurfacesAsError(t *testing.T) {
	scope := dom.NewElement("body")
	element := scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	renderErr := errors.New("widget construction failed")
	newTestBinding(t, runtime, "my-output", &calls, &renderErr)

	require.NoError(t, runtime.Dispatch(valueMessage(t, "out1", `{"columns":["a"],"data":[[1]]}`)))
	require.Len(t, calls, 1)
	require.True(t, element.HasClass(outbind.ErrorClass))

	// Recovery after the render callback succeeds again
	renderErr = nil
	require.NoError(t, runtime.Dispatch(valueMessage(t, "out1", `{"columns":["a"],"data":[[2]]}`)))
	require.Len(t, calls, 2)
	require.False(t, element.HasClass(outbind.ErrorClass))
}

func TestRuntimeDispatchRaw(t *testing.T) {
	scope := dom.NewElement("body")
	scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	require.NoError(t, runtime.DispatchRaw([]byte(`{"output":"out1","payload":{"columns":["a"],"data":[[1]]}}`)))
	require.Len(t, calls, 1)

	require.Error(t, runtime.DispatchRaw([]byte(`not JSON`)))
}

func TestRuntimeServe(t *testing.T) {
	scope := dom.NewElement("body")
	scope.AppendChild(dom.NewDiv("out1", "my-output"))
	runtime := NewRuntime(scope)

	var calls []renderCall
	newTestBinding(t, runtime, "my-output", &calls, nil)

	messages := make(chan Message, 3)
	messages <- Message{Output: "out1", Payload: json.RawMessage(`{"columns":["a"],"data":[[1]]}`)}
	messages <- Message{Output: "out1", Payload: json.RawMessage(`{"columns":["a"],"data":[[2]]}`)}
	messages <- Message{Output: "out1", Payload: json.RawMessage(`{"columns":["a"],"data":[[3]]}`)}
	close(messages)

	require.NoError(t, runtime.Serve(context.Background(), messages))

	// Messages are handled in order, one at a time
	require.Len(t, calls, 3)
	for i, call := range calls {
		require.Equal(t, float64(i+1), call.payload.Data[0][0])
	}

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := runtime.Serve(ctx, make(chan Message))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("context canceled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := runtime.Serve(ctx, make(chan Message))
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
