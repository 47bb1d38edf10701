package apiclient

import (
	"context"
	"net/http"
)

// User is the account record attached to auth responses.
type User struct {
	ID            string `json:"id,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// LoginRequest carries the wallet address and an opaque signed proof
// of ownership produced by the wallet integration.
type LoginRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MeResponse is the liveness-probe payload. Depending on the backend
// version the address arrives nested in User or at the top level.
type MeResponse struct {
	User          User   `json:"user"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// Background is a mintable background-image NFT.
type Background struct {
	ID              string `json:"id"`
	ImageURL        string `json:"imageUrl,omitempty"`
	BlockchainID    string `json:"blockchainId,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status,omitempty"`
}

// VerifyBackgroundResponse reports the confirmation status of a mint.
type VerifyBackgroundResponse struct {
	Status     string     `json:"status"` // "pending", "confirmed" or "failed"
	Background Background `json:"background"`
}

// MintBackgroundRequest asks the backend to mint a background NFT for
// an uploaded image.
type MintBackgroundRequest struct {
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name,omitempty"`
}

// MintBackgroundResponse returns the (typically still pending) background.
type MintBackgroundResponse struct {
	Background      Background `json:"background"`
	TransactionHash string     `json:"transactionHash,omitempty"`
}

// GiftCard is a marketplace gift card backed by an NFT.
type GiftCard struct {
	ID           string `json:"id"`
	Code         string `json:"code,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Message      string `json:"message,omitempty"`
	BackgroundID string `json:"backgroundId,omitempty"`
	Owner        string `json:"owner,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CreateGiftCardRequest creates a new gift card. IdempotencyKey lets
// the backend deduplicate retried submissions.
type CreateGiftCardRequest struct {
	Amount         string `json:"amount"`
	Message        string `json:"message,omitempty"`
	BackgroundID   string `json:"backgroundId,omitempty"`
	Recipient      string `json:"recipient,omitempty"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// ClaimGiftCardRequest redeems a gift card by its claim code.
type ClaimGiftCardRequest struct {
	Code string `json:"code"`
}

// TransferGiftCardRequest moves a gift card to another wallet.
type TransferGiftCardRequest struct {
	To string `json:"to"`
}

// ChatRequest is one message to the marketplace assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Reply string `json:"reply"`
}

// Login exchanges a signed proof of address ownership for a bearer token.
func (c *Client) Login(ctx context.Context, address, signature string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Address: address, Signature: signature}, &resp)
	return resp, err
}

// Me is the authenticated liveness probe: it confirms the current
// token is still accepted by the server and returns the account.
func (c *Client) Me(ctx context.Context) (MeResponse, error) {
	var resp MeResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp)
	return resp, err
}

// VerifyBackground checks the confirmation status of one mint operation.
func (c *Client) VerifyBackground(ctx context.Context, id string) (VerifyBackgroundResponse, error) {
	var resp VerifyBackgroundResponse
	err := c.do(ctx, http.MethodGet, "/api/background/verify/"+id, nil, &resp)
	return resp, err
}

// ListBackgrounds fetches the caller's background images.
func (c *Client) ListBackgrounds(ctx context.Context) ([]Background, error) {
	var resp struct {
		Backgrounds []Background `json:"backgrounds"`
	}
	err := c.do(ctx, http.MethodGet, "/api/background", nil, &resp)
	return resp.Backgrounds, err
}

// MintBackground submits a background image for NFT minting.
func (c *Client) MintBackground(ctx context.Context, req MintBackgroundRequest) (MintBackgroundResponse, error) {
	var resp MintBackgroundResponse
	err := c.do(ctx, http.MethodPost, "/api/background/mint", req, &resp)
	return resp, err
}

// CreateGiftCard creates a new gift card.
func (c *Client) CreateGiftCard(ctx context.Context, req CreateGiftCardRequest) (GiftCard, error) {
	var resp struct {
		GiftCard GiftCard `json:"giftCard"`
	}
	err := c.do(ctx, http.MethodPost, "/api/giftcard", req, &resp)
	return resp.GiftCard, err
}

// GetGiftCard fetches one gift card by id.
func (c *Client) GetGiftCard(ctx context.Context, id string) (GiftCard, error) {
	var resp struct {
		GiftCard GiftCard `json:"giftCard"`
	}
	err := c.do(ctx, http.MethodGet, "/api/giftcard/"+id, nil, &resp)
	return resp.GiftCard, err
}

// ListMyGiftCards fetches the gift cards owned by the current wallet.
func (c *Client) ListMyGiftCards(ctx context.Context) ([]GiftCard, error) {
	var resp struct {
		GiftCards []GiftCard `json:"giftCards"`
	}
	err := c.do(ctx, http.MethodGet, "/api/giftcard/mine", nil, &resp)
	return resp.GiftCards, err
}

// ClaimGiftCard redeems a gift card by claim code.
func (c *Client) ClaimGiftCard(ctx context.Context, code string) (GiftCard, error) {
	var resp struct {
		GiftCard GiftCard `json:"giftCard"`
	}
	err := c.do(ctx, http.MethodPost, "/api/giftcard/claim", ClaimGiftCardRequest{Code: code}, &resp)
	return resp.GiftCard, err
}

// TransferGiftCard moves a gift card to another wallet address.
// Domain rejections ("only the owner may transfer") come back as
// *Error with the server's message intact.
func (c *Client) TransferGiftCard(ctx context.Context, id, to string) (GiftCard, error) {
	var resp struct {
		GiftCard GiftCard `json:"giftCard"`
	}
	err := c.do(ctx, http.MethodPost, "/api/giftcard/"+id+"/transfer", TransferGiftCardRequest{To: to}, &resp)
	return resp.GiftCard, err
}

// SendChatMessage sends one message to the marketplace assistant.
func (c *Client) SendChatMessage(ctx context.Context, message string) (ChatReply, error) {
	var resp ChatReply
	err := c.do(ctx, http.MethodPost, "/api/chat", ChatRequest{Message: message}, &resp)
	return resp, err
}
