// Package auth maintains the client's bearer-token session against
// the marketplace API: it performs the login round-trip that creates
// or refreshes a session (Reauthenticator) and decides, on demand,
// whether the current session is usable (Guard).
//
// # Decision procedure
//
// Guard.EnsureUsable layers a cheap local check over an expensive
// remote one:
//
//	local evaluation ──────────────┐
//	  unauthenticated → done (no network)
//	  expiring soon   → refresh (one call)
//	  valid           → liveness probe (one call)
//	                      401?  → refresh (second call)
//	                      other → done, not repaired
//
// This bounds network traffic to one call in the common case and two
// in the repair case, and never retries a refresh in a loop.
//
// # Signing
//
// Login requires an opaque proof of address ownership. The Signer
// interface hands that to the wallet integration; AddressSigner is the
// deterministic placeholder used by deployments without one.
//
// All failures resolve to sentinel errors or a Result carrying a
// human-readable message. Nothing in this package panics or retries
// beyond the single attempts described above.
package auth
