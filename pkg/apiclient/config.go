package apiclient

import "time"

// Config holds the externally provided API settings.
// The core components are interface-agnostic to this configuration;
// it only shapes the HTTP client they share.
type Config struct {
	BaseURL        string        `env:"GIFTCHAIN_API_URL,required"`                // Base URL of the marketplace API, e.g. "https://api.giftchain.app"
	RequestTimeout time.Duration `env:"GIFTCHAIN_API_TIMEOUT" envDefault:"30s"`    // Per-request timeout
	RateLimit      float64       `env:"GIFTCHAIN_API_RATE_LIMIT" envDefault:"10"`  // Client-side request rate in req/sec, 0 disables limiting
	RateBurst      int           `env:"GIFTCHAIN_API_RATE_BURST" envDefault:"20"`  // Burst size for the client-side limiter
	UserAgent      string        `env:"GIFTCHAIN_API_USER_AGENT" envDefault:"giftchain-go"` // User-Agent header value
}
