package confirm

import "errors"

var (
	// ErrNilChecker is returned when constructing a Poller without a status checker.
	ErrNilChecker = errors.New("confirm: status checker is required")

	// ErrNilBus is returned when constructing a Poller without an event bus.
	ErrNilBus = errors.New("confirm: event bus is required")
)
