package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Credentials is the session credential slot the client reads on every
// request and clears on an auth rejection.
type Credentials interface {
	Token() string
	Clear()
}

// Request describes one call against the academic-services API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client wraps outbound HTTP calls to the remote API. It attaches the bearer
// credential when one is held and translates failures into the error types
// in this package.
//
// No timeout is set on the underlying http.Client: a non-responding request
// stays in flight until the transport itself gives up or the remote answers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials

	// onAuthExpired is invoked after the credential has been cleared on a
	// 401, typically to navigate to the login entry point.
	onAuthExpired func()
}

func NewClient(baseURL string, creds Credentials, onAuthExpired func()) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		creds:         creds,
		onAuthExpired: onAuthExpired,
	}
}

// Send dispatches the request and decodes a 2xx JSON response into out (out
// may be nil when the caller has no use for the body).
func (c *Client) Send(ctx context.Context, req Request, out any) error {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.creds.Clear()
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return ErrAuthExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}
