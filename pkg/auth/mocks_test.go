package auth_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/session"
)

// stubAPI implements auth.API with programmable responses and call counters.
type stubAPI struct {
	mu         sync.Mutex
	loginCalls int
	meCalls    int

	loginFn func(ctx context.Context, address, signature string) (apiclient.LoginResponse, error)
	meFn    func(ctx context.Context) (apiclient.MeResponse, error)
}

func (s *stubAPI) Login(ctx context.Context, address, signature string) (apiclient.LoginResponse, error) {
	s.mu.Lock()
	s.loginCalls++
	fn := s.loginFn
	s.mu.Unlock()

	if fn == nil {
		return apiclient.LoginResponse{}, nil
	}
	return fn(ctx, address, signature)
}

func (s *stubAPI) Me(ctx context.Context) (apiclient.MeResponse, error) {
	s.mu.Lock()
	s.meCalls++
	fn := s.meFn
	s.mu.Unlock()

	if fn == nil {
		return apiclient.MeResponse{}, nil
	}
	return fn(ctx)
}

func (s *stubAPI) calls() (login, me int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls, s.meCalls
}

// lyingStore wraps a real store but serves a fixed token on Get,
// simulating a persistence layer that silently drops writes.
type lyingStore struct {
	session.Store
	servedToken string
}

func (l *lyingStore) Get(ctx context.Context) (session.Session, error) {
	sess, err := l.Store.Get(ctx)
	if err != nil {
		return sess, err
	}
	sess.Token = l.servedToken
	return sess, nil
}

// failingStore rejects all writes.
type failingStore struct {
	session.Store
	err error
}

func (f *failingStore) Set(ctx context.Context, token, walletAddress string) error {
	return f.err
}

func testToken(t *testing.T, exp time.Time) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{"sub": "u-1", "exp": exp.Unix()})
	require.NoError(t, err)

	enc := func(b []byte) string {
		return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "=")
	}
	return enc([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc(body) + ".sig"
}
