package background

import "errors"

var (
	// ErrNilAPI is returned when constructing a component without an API client.
	ErrNilAPI = errors.New("background: api client is required")

	// ErrNilBus is returned when constructing a Service without an event bus.
	ErrNilBus = errors.New("background: event bus is required")
)
