package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/otiai10/sumsub/internal/version"
)

// HeaderPayloadDigestAlg names the digest algorithm of X-Payload-Digest.
const HeaderPayloadDigestAlg = "X-Payload-Digest-Alg"

// DigestAlgSHA1Hex is the only algorithm Verify accepts.
const DigestAlgSHA1Hex = "HMAC_SHA1_HEX"

// DeliveryResult contains the result of a webhook delivery attempt.
type DeliveryResult struct {
	URL          string        // The receiver URL that was targeted
	StatusCode   int           // HTTP status code (0 if request failed)
	Success      bool          // True if status code is 2xx
	ErrorMessage string        // Error description if delivery failed
	ResponseTime time.Duration // Time taken for the request
}

// Sender delivers signed webhook payloads the way the verification
// service does. It exists to exercise receivers locally.
//
// Sender is safe for concurrent use by multiple goroutines.
type Sender struct {
	client  *http.Client
	timeout time.Duration
}

// SenderOption configures the Sender
type SenderOption func(*Sender)

// WithTimeout sets the HTTP request timeout.
// Default timeout is 10 seconds if not specified.
func WithTimeout(d time.Duration) SenderOption {
	return func(s *Sender) {
		s.timeout = d
	}
}

// NewSender creates a new webhook sender with the given options.
func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client = &http.Client{
		Timeout: s.timeout,
	}
	return s
}

// Send posts payload to url with an X-Payload-Digest computed from secret.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - url: The receiver URL
//   - secret: Webhook secret shared with the receiver
//   - payload: Raw JSON body, sent byte for byte
//
// Returns:
//
//	DeliveryResult with success status, timing, and any errors
//
// Example:
//
//	sender := webhook.NewSender()
//	result := sender.Send(ctx, "http://localhost:8080/webhooks/sumsub", secret, payload)
//	if !result.Success {
//	    log.Printf("delivery failed: %s", result.ErrorMessage)
//	}
func (s *Sender) Send(ctx context.Context, url string, secret, payload []byte) DeliveryResult {
	start := time.Now()
	result := DeliveryResult{
		URL: url,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("failed to create request: %v", err)
		result.ResponseTime = time.Since(start)
		return result
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderPayloadDigest, DigestHex(secret, payload))
	req.Header.Set(HeaderPayloadDigestAlg, DigestAlgSHA1Hex)
	req.Header.Set("User-Agent", "sumsub-go/"+version.CommitHash)

	resp, err := s.client.Do(req)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("request failed: %v", err)
		result.ResponseTime = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	result.ResponseTime = time.Since(start)

	if !result.Success {
		result.ErrorMessage = fmt.Sprintf("unexpected status: %d", resp.StatusCode)
	}

	return result
}
