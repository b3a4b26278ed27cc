// Package ckan invokes actions on a CKAN-style action API and classifies
// whatever comes back into a Response.
package ckan

import (
	"context"
	"strings"
	"time"

	"github.com/samvad-hq/ckan-client/pkg/httpclient"
)

const defaultTimeout = 30 * time.Second

// Client calls actions against a single CKAN instance. It holds no per-call
// state and may be shared between goroutines.
type Client struct {
	url     string
	http    httpclient.Client
	timeout time.Duration
	log     Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout of the default transport. It has no
// effect when combined with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger that records each invocation at debug level.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = ensureLogger(log) }
}

// New returns a client for the CKAN instance at url. Leading and trailing
// slashes are stripped from url.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:     strings.Trim(url, "/"),
		timeout: defaultTimeout,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	return c
}

// URL returns the normalized base URL.
func (c *Client) URL() string { return c.url }

// Endpoint returns the URL the action is posted to.
func (c *Client) Endpoint(action Action) string {
	return c.url + "/" + action.Path()
}

// Invoke posts action with no body and decodes the reply, expecting a result
// of type T on success. It performs exactly one request and never retries.
func Invoke[T any](c *Client, action Action) Response[T] {
	return InvokeContext[T](context.Background(), c, action)
}

// InvokeContext is Invoke bound to ctx. Cancellation surfaces as a
// TransportError.
func InvokeContext[T any](ctx context.Context, c *Client, action Action) Response[T] {
	if c == nil || c.http == nil {
		return TransportError{Message: "ckan client is not initialized"}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target := c.Endpoint(action)
	start := time.Now()

	resp, err := c.http.Post(ctx, target, nil)
	if err != nil {
		c.log.DebugObj("ckan action failed", "invocation", map[string]any{
			"action":     action.Name,
			"url":        target,
			"kind":       KindTransportError,
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return TransportError{Message: err.Error()}
	}

	out := Decode[T](resp.Body())
	c.log.DebugObj("ckan action invoked", "invocation", map[string]any{
		"action":     action.Name,
		"url":        target,
		"status":     resp.StatusCode(),
		"kind":       out.Kind(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return out
}
