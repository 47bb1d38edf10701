package claims

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Claims is the decoded view of a bearer token's payload segment.
// Only the fields the client acts upon are modeled; unknown fields
// are ignored during decoding.
type Claims struct {
	Subject       string `json:"sub,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
	ExpiresAt     int64  `json:"exp,omitempty"` // Unix timestamp, zero means no expiry claim
	IssuedAt      int64  `json:"iat,omitempty"`
}

// HasExpiry reports whether the token carries an expiry claim.
func (c Claims) HasExpiry() bool {
	return c.ExpiresAt > 0
}

// Expiry returns the expiry claim as a time.Time.
// Only meaningful when HasExpiry is true.
func (c Claims) Expiry() time.Time {
	return time.Unix(c.ExpiresAt, 0)
}

// Decode extracts the claims from a compact three-segment token
// (header.claims.signature, each base64url) without verifying the
// signature. Verification is the server's job; this decoder exists
// solely so the client can read the expiry ahead of time.
//
// A token that does not match the expected structure yields
// ErrMalformedToken. Malformed input is data, not a fault: callers
// decide whether an undecodable token is an error at all.
func Decode(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	payload, err := base64URLDecode(parts[1])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}

	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return Claims{}, ErrMalformedToken
	}

	return c, nil
}

// base64URLDecode decodes base64url data, restoring padding as needed.
// Compact tokens omit padding, but Go's decoder requires it.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	return base64.URLEncoding.DecodeString(s)
}
