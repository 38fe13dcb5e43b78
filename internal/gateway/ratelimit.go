package gateway

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitTransport delays requests so they leave no faster than Limiter
// allows. A wait aborted by the request context fails the request.
type RateLimitTransport struct {
	Limiter *rate.Limiter
	Next    http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(req.Context()); err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return next(t.Next).RoundTrip(req)
}
