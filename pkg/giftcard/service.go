package giftcard

import (
	"context"

	"github.com/google/uuid"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
)

// API is the slice of the marketplace client this service needs.
// *apiclient.Client satisfies it.
type API interface {
	CreateGiftCard(ctx context.Context, req apiclient.CreateGiftCardRequest) (apiclient.GiftCard, error)
	GetGiftCard(ctx context.Context, id string) (apiclient.GiftCard, error)
	ListMyGiftCards(ctx context.Context) ([]apiclient.GiftCard, error)
	ClaimGiftCard(ctx context.Context, code string) (apiclient.GiftCard, error)
	TransferGiftCard(ctx context.Context, id, to string) (apiclient.GiftCard, error)
}

// Service exposes the gift-card operations. It is deliberately thin:
// all business rules (ownership, claim validity, amounts) live on the
// backend, and its rejection messages pass through to the caller
// unmodified.
type Service struct {
	api API
}

// NewService creates the gift-card service.
func NewService(api API) (*Service, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	return &Service{api: api}, nil
}

// CreateParams are the caller-supplied fields of a new gift card.
type CreateParams struct {
	Amount       string
	Message      string
	BackgroundID string
	Recipient    string
}

// Create creates a new gift card. Each call carries a fresh
// idempotency key so a retried submission cannot mint twice.
func (s *Service) Create(ctx context.Context, params CreateParams) (apiclient.GiftCard, error) {
	if params.Amount == "" {
		return apiclient.GiftCard{}, ErrMissingAmount
	}

	return s.api.CreateGiftCard(ctx, apiclient.CreateGiftCardRequest{
		Amount:         params.Amount,
		Message:        params.Message,
		BackgroundID:   params.BackgroundID,
		Recipient:      params.Recipient,
		IdempotencyKey: uuid.NewString(),
	})
}

// Get fetches one gift card.
func (s *Service) Get(ctx context.Context, id string) (apiclient.GiftCard, error) {
	if id == "" {
		return apiclient.GiftCard{}, ErrMissingID
	}
	return s.api.GetGiftCard(ctx, id)
}

// ListMine fetches the gift cards owned by the current wallet.
func (s *Service) ListMine(ctx context.Context) ([]apiclient.GiftCard, error) {
	return s.api.ListMyGiftCards(ctx)
}

// Claim redeems a gift card by its claim code.
func (s *Service) Claim(ctx context.Context, code string) (apiclient.GiftCard, error) {
	if code == "" {
		return apiclient.GiftCard{}, ErrMissingCode
	}
	return s.api.ClaimGiftCard(ctx, code)
}

// Transfer moves a gift card to another wallet address. Ownership is
// enforced server-side; a rejection arrives as the server's own
// message ("only the owner may transfer this gift card").
func (s *Service) Transfer(ctx context.Context, id, to string) (apiclient.GiftCard, error) {
	if id == "" {
		return apiclient.GiftCard{}, ErrMissingID
	}
	if to == "" {
		return apiclient.GiftCard{}, ErrMissingRecipient
	}
	return s.api.TransferGiftCard(ctx, id, to)
}
