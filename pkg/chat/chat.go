package chat

import (
	"context"
	"strings"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
)

// API is the slice of the marketplace client this service needs.
// *apiclient.Client satisfies it.
type API interface {
	SendChatMessage(ctx context.Context, message string) (apiclient.ChatReply, error)
}

// Service talks to the marketplace assistant. The assistant's
// response logic is entirely server-side; this is a one-shot
// request/reply wrapper.
type Service struct {
	api API
}

// NewService creates the chat service.
func NewService(api API) (*Service, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	return &Service{api: api}, nil
}

// Send submits one message and returns the assistant's reply.
func (s *Service) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.api.SendChatMessage(ctx, message)
	if err != nil {
		return "", err
	}
	return reply.Reply, nil
}
