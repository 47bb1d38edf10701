package giftcard_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/giftcard"
)

type stubAPI struct {
	createFn   func(ctx context.Context, req apiclient.CreateGiftCardRequest) (apiclient.GiftCard, error)
	transferFn func(ctx context.Context, id, to string) (apiclient.GiftCard, error)
	claimFn    func(ctx context.Context, code string) (apiclient.GiftCard, error)
}

func (s *stubAPI) CreateGiftCard(ctx context.Context, req apiclient.CreateGiftCardRequest) (apiclient.GiftCard, error) {
	if s.createFn == nil {
		return apiclient.GiftCard{}, nil
	}
	return s.createFn(ctx, req)
}

func (s *stubAPI) GetGiftCard(ctx context.Context, id string) (apiclient.GiftCard, error) {
	return apiclient.GiftCard{ID: id}, nil
}

func (s *stubAPI) ListMyGiftCards(ctx context.Context) ([]apiclient.GiftCard, error) {
	return []apiclient.GiftCard{{ID: "gc-1"}}, nil
}

func (s *stubAPI) ClaimGiftCard(ctx context.Context, code string) (apiclient.GiftCard, error) {
	if s.claimFn == nil {
		return apiclient.GiftCard{}, nil
	}
	return s.claimFn(ctx, code)
}

func (s *stubAPI) TransferGiftCard(ctx context.Context, id, to string) (apiclient.GiftCard, error) {
	if s.transferFn == nil {
		return apiclient.GiftCard{}, nil
	}
	return s.transferFn(ctx, id, to)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fresh idempotency key per call", func(t *testing.T) {
		var keys []string
		api := &stubAPI{
			createFn: func(ctx context.Context, req apiclient.CreateGiftCardRequest) (apiclient.GiftCard, error) {
				keys = append(keys, req.IdempotencyKey)
				return apiclient.GiftCard{ID: "gc-1"}, nil
			},
		}
		svc, err := giftcard.NewService(api)
		require.NoError(t, err)

		_, err = svc.Create(ctx, giftcard.CreateParams{Amount: "25.00"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, giftcard.CreateParams{Amount: "25.00"})
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
		for _, k := range keys {
			_, err := uuid.Parse(k)
			assert.NoError(t, err, "idempotency key %q should be a UUID", k)
		}
	})

	t.Run("amount required", func(t *testing.T) {
		svc, err := giftcard.NewService(&stubAPI{})
		require.NoError(t, err)

		_, err = svc.Create(ctx, giftcard.CreateParams{})
		assert.ErrorIs(t, err, giftcard.ErrMissingAmount)
	})
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("server rejection passes through verbatim", func(t *testing.T) {
		api := &stubAPI{
			transferFn: func(ctx context.Context, id, to string) (apiclient.GiftCard, error) {
				return apiclient.GiftCard{}, &apiclient.Error{StatusCode: 403, Message: "only the owner may transfer this gift card"}
			},
		}
		svc, err := giftcard.NewService(api)
		require.NoError(t, err)

		_, err = svc.Transfer(ctx, "gc-1", "0xdef")
		require.Error(t, err)
		assert.EqualError(t, err, "only the owner may transfer this gift card")
	})

	t.Run("input validation", func(t *testing.T) {
		svc, err := giftcard.NewService(&stubAPI{})
		require.NoError(t, err)

		_, err = svc.Transfer(ctx, "", "0xdef")
		assert.ErrorIs(t, err, giftcard.ErrMissingID)

		_, err = svc.Transfer(ctx, "gc-1", "")
		assert.ErrorIs(t, err, giftcard.ErrMissingRecipient)
	})
}

func TestClaim(t *testing.T) {
	t.Parallel()

	svc, err := giftcard.NewService(&stubAPI{
		claimFn: func(ctx context.Context, code string) (apiclient.GiftCard, error) {
			return apiclient.GiftCard{ID: "gc-9", Status: "claimed"}, nil
		},
	})
	require.NoError(t, err)

	card, err := svc.Claim(context.Background(), "CLAIM-CODE")
	require.NoError(t, err)
	assert.Equal(t, "claimed", card.Status)

	_, err = svc.Claim(context.Background(), "")
	assert.ErrorIs(t, err, giftcard.ErrMissingCode)
}
