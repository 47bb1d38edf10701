package background_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/background"
	"github.com/giftchain/giftchain-go/pkg/confirm"
	"github.com/giftchain/giftchain-go/pkg/eventbus"
)

type stubAPI struct {
	mu     sync.Mutex
	mintFn func(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error)
	listFn func(ctx context.Context) ([]apiclient.Background, error)
	verify func(ctx context.Context, id string) (apiclient.VerifyBackgroundResponse, error)
}

func (s *stubAPI) ListBackgrounds(ctx context.Context) ([]apiclient.Background, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubAPI) MintBackground(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error) {
	if s.mintFn == nil {
		return apiclient.MintBackgroundResponse{}, nil
	}
	return s.mintFn(ctx, req)
}

func (s *stubAPI) VerifyBackground(ctx context.Context, id string) (apiclient.VerifyBackgroundResponse, error) {
	if s.verify == nil {
		return apiclient.VerifyBackgroundResponse{}, nil
	}
	return s.verify(ctx, id)
}

type recordingStarter struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingStarter) Start(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recordingStarter) started() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func quietBus() *eventbus.Bus {
	return eventbus.New(eventbus.WithLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))))
}

func TestMint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("pending mint publishes added and registers with poller", func(t *testing.T) {
		api := &stubAPI{
			mintFn: func(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error) {
				assert.Equal(t, "https://cdn/img.png", req.ImageURL)
				return apiclient.MintBackgroundResponse{
					Background:      apiclient.Background{ID: "bg-42", ImageURL: req.ImageURL, Status: "pending"},
					TransactionHash: "0xtx",
				}, nil
			},
		}
		bus := quietBus()
		starter := &recordingStarter{}

		var added []apiclient.Background
		bus.Subscribe(background.EventAdded, func(ctx context.Context, evt eventbus.Event) {
			added = append(added, evt.Payload.(apiclient.Background))
		})

		svc, err := background.NewService(api, bus, background.WithConfirmations(starter))
		require.NoError(t, err)
		defer svc.Close()

		bg, err := svc.Mint(ctx, "https://cdn/img.png", "sunset")
		require.NoError(t, err)

		assert.Equal(t, "bg-42", bg.ID)
		assert.Equal(t, "0xtx", bg.TransactionHash, "top-level hash folded into the background")
		assert.Equal(t, []string{"bg-42"}, starter.started())
		require.Len(t, added, 1)
		assert.Equal(t, "bg-42", added[0].ID)
	})

	t.Run("already confirmed mint skips the poller", func(t *testing.T) {
		api := &stubAPI{
			mintFn: func(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error) {
				return apiclient.MintBackgroundResponse{
					Background: apiclient.Background{ID: "bg-1", Status: "confirmed", BlockchainID: "0xabc"},
				}, nil
			},
		}
		starter := &recordingStarter{}
		svc, err := background.NewService(api, quietBus(), background.WithConfirmations(starter))
		require.NoError(t, err)
		defer svc.Close()

		_, err = svc.Mint(ctx, "u", "n")
		require.NoError(t, err)
		assert.Empty(t, starter.started())
	})

	t.Run("mint failure publishes nothing", func(t *testing.T) {
		api := &stubAPI{
			mintFn: func(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error) {
				return apiclient.MintBackgroundResponse{}, errors.New("mint rejected")
			},
		}
		bus := quietBus()
		events := 0
		bus.Subscribe(background.EventAdded, func(ctx context.Context, evt eventbus.Event) { events++ })

		svc, err := background.NewService(api, bus)
		require.NoError(t, err)
		defer svc.Close()

		_, err = svc.Mint(ctx, "u", "n")
		require.Error(t, err)
		assert.Zero(t, events)
	})
}

func TestRebroadcast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("confirmed outcome becomes updated event", func(t *testing.T) {
		bus := quietBus()

		var updated []apiclient.Background
		bus.Subscribe(background.EventUpdated, func(ctx context.Context, evt eventbus.Event) {
			updated = append(updated, evt.Payload.(apiclient.Background))
		})

		svc, err := background.NewService(&stubAPI{}, bus)
		require.NoError(t, err)
		defer svc.Close()

		bus.Publish(ctx, eventbus.Event{
			Type: confirm.EventOperationConfirmed,
			Payload: confirm.Outcome{
				ID:           "bg-42",
				Status:       confirm.StatusConfirmed,
				BlockchainID: "0xabc",
			},
		})

		require.Len(t, updated, 1)
		assert.Equal(t, "bg-42", updated[0].ID)
		assert.Equal(t, "0xabc", updated[0].BlockchainID)
		assert.Equal(t, "confirmed", updated[0].Status)
	})

	t.Run("closed service stops rebroadcasting", func(t *testing.T) {
		bus := quietBus()

		updates := 0
		bus.Subscribe(background.EventUpdated, func(ctx context.Context, evt eventbus.Event) { updates++ })

		svc, err := background.NewService(&stubAPI{}, bus)
		require.NoError(t, err)
		svc.Close()

		bus.Publish(ctx, eventbus.Event{
			Type:    confirm.EventOperationFailed,
			Payload: confirm.Outcome{ID: "bg-1", Status: confirm.StatusFailed},
		})
		assert.Zero(t, updates)
	})
}

func TestStatusChecker(t *testing.T) {
	t.Parallel()

	t.Run("maps verify response", func(t *testing.T) {
		api := &stubAPI{
			verify: func(ctx context.Context, id string) (apiclient.VerifyBackgroundResponse, error) {
				assert.Equal(t, "bg-42", id)
				return apiclient.VerifyBackgroundResponse{
					Status:     "confirmed",
					Background: apiclient.Background{BlockchainID: "0xabc", TransactionHash: "0xtx"},
				}, nil
			},
		}
		checker, err := background.NewStatusChecker(api)
		require.NoError(t, err)

		res, err := checker.CheckStatus(context.Background(), "bg-42")
		require.NoError(t, err)
		assert.Equal(t, confirm.StatusConfirmed, res.Status)
		assert.Equal(t, "0xabc", res.BlockchainID)
		assert.Equal(t, "0xtx", res.TransactionHash)
	})

	t.Run("propagates errors", func(t *testing.T) {
		api := &stubAPI{
			verify: func(ctx context.Context, id string) (apiclient.VerifyBackgroundResponse, error) {
				return apiclient.VerifyBackgroundResponse{}, errors.New("boom")
			},
		}
		checker, err := background.NewStatusChecker(api)
		require.NoError(t, err)

		_, err = checker.CheckStatus(context.Background(), "bg-1")
		assert.Error(t, err)
	})

	t.Run("requires api", func(t *testing.T) {
		_, err := background.NewStatusChecker(nil)
		assert.ErrorIs(t, err, background.ErrNilAPI)
	})
}
