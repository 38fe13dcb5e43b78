package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client is the shared, read-only HTTP handle built by Factory.
type Client struct {
	base      string
	http      *http.Client
	codec     Codec
	userAgent string
}

// BaseURL returns the server root the client targets.
func (c *Client) BaseURL() string { return c.base }

// send performs one exchange and wraps the outcome in a Response. emptyOK
// marks endpoints whose successful answer may carry no body.
func send[T any](
	ctx context.Context,
	c *Client,
	method, path string,
	in any,
	emptyOK bool,
) (*Response[T], error) {
	var body io.Reader
	if in != nil {
		b, err := c.codec.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	out := &Response[T]{StatusCode: resp.StatusCode}
	if !out.Success() {
		out.ErrorBody = raw
		return out, nil
	}
	// A literal null carries no value and counts as no body.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if emptyOK {
			out.Body = new(T)
		}
		return out, nil
	}

	var v T
	if err := c.codec.Unmarshal(raw, &v); err != nil {
		return nil, &DecodeError{Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}
	out.Body = &v
	return out, nil
}
