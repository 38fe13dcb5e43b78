package gateway

import (
	"net/http"
	"time"
)

// Config holds the options the Factory builds its client from.
type Config struct {
	BaseURL   string            // server root, e.g. http://127.0.0.1:8080
	Timeout   time.Duration     // per-request timeout; 0 disables
	RateLimit float64           // requests per second; <= 0 disables
	Burst     int               // rate limiter burst; defaults to 1
	UserAgent string            // optional User-Agent header
	Transport http.RoundTripper // optional base transport; defaults to http.DefaultTransport
}
