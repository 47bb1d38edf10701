package auth

import (
	"context"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Signer produces an opaque signed proof of address ownership for the
// login request. The concrete mechanism belongs to the wallet
// integration; the SDK only forwards the result.
type Signer interface {
	SignAddress(ctx context.Context, address string) (string, error)
}

// AddressSigner is the placeholder signer used when no wallet
// integration is wired in: it derives a deterministic digest from the
// address itself. The server side of such deployments accepts the
// derived value; production hosts inject a real wallet-backed Signer.
type AddressSigner struct{}

// SignAddress derives a keccak256 digest over the lowercased address.
func (AddressSigner) SignAddress(_ context.Context, address string) (string, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(strings.ToLower(address)))
	return "0x" + hex.EncodeToString(h.Sum(nil)), nil
}
