package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"walletkit/internal/domain"
)

// Factory lazily builds the single shared Client. The first caller of Client
// constructs it; every later caller, concurrent or not, gets the same pointer.
type Factory struct {
	cfg     Config
	base    string
	tokens  domain.TokenSource
	log     logrus.FieldLogger
	metrics *Metrics

	build  func() *Client
	mu     sync.Mutex
	client atomic.Pointer[Client]
}

// NewFactory validates cfg and returns a Factory. metrics may be nil.
func NewFactory(
	cfg Config,
	tokens domain.TokenSource,
	log logrus.FieldLogger,
	metrics *Metrics,
) (*Factory, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("gateway: base url %q must be http or https", cfg.BaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("gateway: base url %q has no host", cfg.BaseURL)
	}
	if tokens == nil {
		return nil, fmt.Errorf("gateway: token source is required")
	}

	f := &Factory{
		cfg:     cfg,
		base:    strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:  tokens,
		log:     log.WithField("component", "gateway"),
		metrics: metrics,
	}
	f.build = f.newClient
	return f, nil
}

// Client returns the shared Client, building it on first use.
func (f *Factory) Client() *Client {
	if c := f.client.Load(); c != nil {
		return c
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if c := f.client.Load(); c != nil {
		return c
	}
	c := f.build()
	f.client.Store(c)
	return c
}

func (f *Factory) newClient() *Client {
	rt := f.cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if f.cfg.RateLimit > 0 {
		burst := f.cfg.Burst
		if burst < 1 {
			burst = 1
		}
		rt = &RateLimitTransport{Limiter: rate.NewLimiter(rate.Limit(f.cfg.RateLimit), burst), Next: rt}
	}
	rt = &LoggingTransport{Next: rt, Log: f.log, Metrics: f.metrics}
	rt = &AuthTransport{Tokens: f.tokens, Next: rt, Log: f.log}

	f.log.WithField("base_url", f.base).Debug("http client built")
	return &Client{
		base:      f.base,
		http:      &http.Client{Transport: rt, Timeout: f.cfg.Timeout},
		codec:     JSONCodec{},
		userAgent: f.cfg.UserAgent,
	}
}
