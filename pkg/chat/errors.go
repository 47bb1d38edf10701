package chat

import "errors"

var (
	// ErrNilAPI is returned when constructing a Service without an API client.
	ErrNilAPI = errors.New("chat: api client is required")

	// ErrEmptyMessage is returned by Send for blank input.
	ErrEmptyMessage = errors.New("chat: message is empty")
)
