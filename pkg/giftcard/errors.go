package giftcard

import "errors"

var (
	// ErrNilAPI is returned when constructing a Service without an API client.
	ErrNilAPI = errors.New("giftcard: api client is required")

	// ErrMissingAmount is returned by Create when no amount is given.
	ErrMissingAmount = errors.New("giftcard: amount is required")

	// ErrMissingID is returned when an operation is missing its gift card id.
	ErrMissingID = errors.New("giftcard: id is required")

	// ErrMissingCode is returned by Claim when no claim code is given.
	ErrMissingCode = errors.New("giftcard: claim code is required")

	// ErrMissingRecipient is returned by Transfer when no destination is given.
	ErrMissingRecipient = errors.New("giftcard: recipient address is required")
)
