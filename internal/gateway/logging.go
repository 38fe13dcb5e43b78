package gateway

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingTransport writes one log entry per exchange and feeds Metrics when
// set. Header values are never logged.
type LoggingTransport struct {
	Next    http.RoundTripper
	Log     logrus.FieldLogger
	Metrics *Metrics
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := next(t.Next).RoundTrip(req)
	elapsed := time.Since(start)

	entry := t.Log.WithFields(logrus.Fields{
		"method":        req.Method,
		"path":          req.URL.Path,
		"authenticated": req.Header.Get("Authorization") != "",
		"duration_ms":   elapsed.Milliseconds(),
	})

	if err != nil {
		t.Metrics.observe(req.Method, "error", elapsed)
		entry.WithError(err).Warn("http request failed")
		return nil, err
	}

	t.Metrics.observe(req.Method, strconv.Itoa(resp.StatusCode), elapsed)
	entry = entry.WithFields(logrus.Fields{
		"status":         resp.StatusCode,
		"content_length": resp.ContentLength,
	})
	if resp.StatusCode >= http.StatusBadRequest {
		entry.Info("http request completed with error status")
	} else {
		entry.Debug("http request completed")
	}
	return resp, nil
}
