// Package client is a typed client for the Sumsub verification API.
//
// Every call is authenticated with the X-App-Token / X-App-Access-Sig /
// X-App-Access-Ts header triple produced by the signature package. Headers
// are computed per call from a fresh timestamp; callers that retry a failed
// call simply invoke the method again and get a newly signed request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/otiai10/sumsub/internal/signature"
	"github.com/otiai10/sumsub/internal/version"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.sumsub.com"

// maxErrorBody bounds how much of a non-2xx response is kept in APIError.
const maxErrorBody = 64 << 10

// Client calls the verification API.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	signer     *signature.Signer
	clock      func() time.Time
	logger     zerolog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP request timeout.
// Default timeout is 30 seconds if not specified. Ignored when
// WithHTTPClient is also given.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing at debug level.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithClock replaces the time source used for request timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.clock = now
	}
}

// New creates a client authenticating with appToken and secretKey.
//
// Example:
//
//	c := client.New(cfg.API.AppToken, []byte(cfg.API.SecretKey),
//	    client.WithTimeout(10*time.Second))
//	status, err := c.GetAPIHealthStatus(ctx)
func New(appToken string, secretKey []byte, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
		clock:   time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	c.signer = signature.NewSigner(appToken, secretKey, signature.WithClock(c.clock))
	return c
}

// newRequest builds a signed request. The signature covers
// req.URL.RequestURI(), which is the request line net/http transmits.
func (c *Client) newRequest(ctx context.Context, method, pathAndQuery string, body *requestBody) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var signed []byte
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
		if body.signed {
			signed = body.data
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "sumsub-go/"+version.CommitHash)

	c.signer.SignRequest(req, signed)
	return req, nil
}

// do sends a signed request and returns the response for 2xx statuses.
// Non-2xx responses are consumed and returned as *APIError.
func (c *Client) do(ctx context.Context, method, pathAndQuery string, body *requestBody) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, pathAndQuery, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", req.URL.Path).
			Msg("sumsub request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", req.URL.Path).
		Str("app_token", signature.MaskSecret(c.signer.AppToken())).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("sumsub request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		msg, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			msg = []byte("could not read error body")
		}
		return nil, newAPIError(resp.StatusCode, msg)
	}
	return resp, nil
}

// doJSON sends a request and decodes a JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, pathAndQuery string, body *requestBody, out any) error {
	resp, err := c.do(ctx, method, pathAndQuery, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doBytes sends a request and returns the raw response body.
func (c *Client) doBytes(ctx context.Context, method, pathAndQuery string, body *requestBody) ([]byte, error) {
	resp, err := c.do(ctx, method, pathAndQuery, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return b, nil
}

// doEmpty sends a request whose response body is ignored.
func (c *Client) doEmpty(ctx context.Context, method, pathAndQuery string, body *requestBody) error {
	resp, err := c.do(ctx, method, pathAndQuery, body)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
