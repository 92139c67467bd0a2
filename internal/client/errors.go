package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEncoding is returned when a request payload cannot be serialized.
	// Nothing is signed or sent in that case.
	ErrEncoding = errors.New("sumsub: payload could not be encoded")

	// ErrTransport wraps failures of the underlying HTTP round trip.
	// The original error stays reachable through errors.As.
	ErrTransport = errors.New("sumsub: transport failure")

	// ErrEmptyBatch is returned by bulk methods called with no records.
	ErrEmptyBatch = errors.New("sumsub: bulk request has no records")
)

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	StatusCode    int    `json:"-"`
	Message       string `json:"-"` // raw response body
	Description   string `json:"description"`
	Code          int    `json:"code"`
	ErrorCode     int    `json:"errorCode"`
	CorrelationID string `json:"correlationId"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("sumsub: api error %d: %s (correlation id %s)", e.StatusCode, e.Description, e.CorrelationID)
	}
	return fmt.Sprintf("sumsub: api error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Message: string(body)}
	// The service usually answers with a JSON description; keep the raw text if not.
	_ = json.Unmarshal(body, e)
	return e
}
