// Package giftcard wraps the gift-card endpoints of the marketplace
// API: create, claim, list, and transfer. The backend owns every
// business rule; this layer adds only input checks and per-create
// idempotency keys, and passes server rejections through verbatim.
package giftcard
