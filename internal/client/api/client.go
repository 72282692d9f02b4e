// Package api implements the authenticated HTTP client the dashboard and
// marketing frontends use against the portfolio backend. It attaches the
// current bearer token at call time, speaks JSON or multipart, and folds
// every non-2xx response into a RequestError carrying the server's message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RequestError describes a failed call: a non-2xx status or an unreachable
// server. Message is the server-provided error message when one could be
// parsed, otherwise a generic fallback.
type RequestError struct {
	Status  int // 0 when the request never got a response
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

const genericFailure = "Request failed"

// Client is a thin wrapper over http.Client bound to one backend origin.
// The token function is consulted on every call, so a login or logout
// between requests takes effect immediately; requests already in flight
// keep the token they were sent with.
type Client struct {
	baseURL string
	token   func() string
	http    *http.Client
}

// New builds a client for baseURL. token may be nil for purely public use;
// otherwise it returns the current bearer token or "" when logged out.
// Calls time out after 15 seconds so an unresponsive backend cannot hang a
// controller forever.
func New(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Get issues an authenticated GET and decodes the JSON response into out
// (skipped when out is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	c.setHeaders(req, "application/json")
	return c.do(req, out)
}

// Post issues an authenticated JSON POST. body may be nil for bodiless
// calls such as the token-validation probe.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: err.Error()}
		}
		r = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, r)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	c.setHeaders(req, "application/json")
	return c.do(req, out)
}

// PostMultipart issues an authenticated POST with a prebuilt multipart
// body. contentType must be the writer's FormDataContentType so the
// boundary survives; the body passes through unmodified.
func (c *Client) PostMultipart(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	c.setHeaders(req, contentType)
	return c.do(req, out)
}

// setHeaders attaches the bearer token (omitted entirely when logged out)
// and the content type.
func (c *Client) setHeaders(req *http.Request, contentType string) {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
}

// do executes the request. Non-2xx responses are parsed for a {message}
// error body; parse failures fall back to a generic message. Successful
// bodies are decoded into out without schema validation.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := genericFailure
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			if errBody.Message != "" {
				msg = errBody.Message
			} else if errBody.Error != "" {
				msg = errBody.Error
			}
		}
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Status: resp.StatusCode, Message: genericFailure}
	}
	return nil
}
