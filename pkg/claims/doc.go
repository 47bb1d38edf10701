// Package claims provides a minimal, verification-free decoder for the
// compact three-segment bearer tokens issued by the marketplace API.
//
// The client never validates token signatures - that is the server's
// responsibility. It only needs to peek at the expiry claim to decide
// whether a refresh is due before the server starts rejecting requests.
// Decode therefore parses the middle (payload) segment and nothing else.
//
// # Usage
//
//	c, err := claims.Decode(token)
//	if err != nil {
//	    // structurally opaque token; treat as indeterminate, not invalid
//	}
//	if c.HasExpiry() && time.Until(c.Expiry()) < 10*time.Minute {
//	    // refresh
//	}
//
// Decode is pure and allocation-light, which makes it the natural unit
// test surface for expiry-boundary behavior.
package claims
