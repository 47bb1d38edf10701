package claims

import "errors"

var (
	// ErrMalformedToken is returned when a token does not parse into the
	// expected three-segment structure or its payload is not well-formed.
	ErrMalformedToken = errors.New("claims: malformed token")
)
