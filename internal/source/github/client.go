// Package github talks to the GitHub REST API on behalf of the
// notification session.
package github

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// Response is the raw outcome of a completed HTTP exchange.
type Response struct {
	Status int
	Body   []byte
}

// TransportError reports that no HTTP response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Requester issues a single HTTP request and returns the raw response.
type Requester interface {
	Do(ctx context.Context, method, url string, headers map[string]string) (*Response, error)
}

// Client is a thin HTTP client over resty. It sends exactly the headers
// it is given, never retries and applies no timeout of its own: the
// caller bounds a request through ctx.
type Client struct {
	rc *resty.Client
}

// NewClient creates a new Client with retries and timeouts disabled.
func NewClient() *Client {
	return NewClientWithResty(resty.New())
}

// NewClientWithResty wraps an existing resty client, for callers that
// need their own transport or client-wide settings. Retries and the
// client timeout are always turned off.
func NewClientWithResty(rc *resty.Client) *Client {
	rc.SetRetryCount(0).SetTimeout(0)
	return &Client{rc: rc}
}

// Do performs the request. A non-nil error is always a *TransportError;
// every HTTP status, including 4xx and 5xx, is returned as a Response.
func (c *Client) Do(
	ctx context.Context,
	method string,
	url string,
	headers map[string]string,
) (*Response, error) {
	res, err := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers).
		Execute(method, url)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	return &Response{
		Status: res.StatusCode(),
		Body:   res.Bytes(),
	}, nil
}

// Close releases the underlying resty client.
func (c *Client) Close() error {
	return c.rc.Close()
}
