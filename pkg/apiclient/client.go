package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, if any. Returning
// ok=false means no Authorization header is sent at all; the client
// never sends an empty one.
type TokenSource func(ctx context.Context) (token string, ok bool)

// Client is the single HTTP client shared by every service in the SDK.
// It owns connection pooling, bearer-token injection, client-side rate
// limiting, and error classification; the typed endpoint methods live
// in endpoints.go.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	token     TokenSource
	userAgent string
	logger    *slog.Logger
}

// New creates an API client from configuration.
// Connection pooling is tuned for a long-lived client talking to a
// single API host.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: cfg.UserAgent,
		logger:    slog.Default(),
	}

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do performs one JSON round-trip. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.JoinPath(strings.Split(strings.Trim(path, "/"), "/")...)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok, ok := c.token(ctx); ok && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Context errors surface as-is so callers can tell a cancel
		// from an unreachable server.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Join(ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// responseError converts a non-2xx response into an *Error, passing
// the server's message through unmodified when one is present.
func (c *Client) responseError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	// 64KB cap: error bodies are small, never trust the server on size.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var wire struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil {
		switch {
		case wire.Error != "":
			apiErr.Message = wire.Error
		case wire.Message != "":
			apiErr.Message = wire.Message
		}
	}

	c.logger.Debug("api request failed",
		slog.Int("status", resp.StatusCode),
		slog.String("message", apiErr.Message),
	)
	return apiErr
}
