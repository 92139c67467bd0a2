package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// DefaultMaxBodyBytes bounds the body read by Handler.
const DefaultMaxBodyBytes int64 = 1 << 20

// EventFunc receives events whose signature has been verified.
// A non-nil error makes Handler answer 500 so the service redelivers.
type EventFunc func(ctx context.Context, ev *Event) error

// Handler is an http.Handler that authenticates webhook deliveries before
// handing them to an EventFunc.
//
// The raw body is verified against X-Payload-Digest before any JSON parsing
// is attempted. Handler is safe for concurrent use.
type Handler struct {
	secret   []byte
	onEvent  EventFunc
	maxBytes int64
	logger   zerolog.Logger
}

// HandlerOption configures the Handler
type HandlerOption func(*Handler)

// WithMaxBodyBytes sets the largest body Handler will read.
// Default is DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// WithLogger sets the logger used for accept/reject outcomes.
func WithLogger(l zerolog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler creates a Handler verifying with secret and dispatching to onEvent.
// onEvent may be nil, in which case verified events are only acknowledged.
func NewHandler(secret []byte, onEvent EventFunc, opts ...HandlerOption) *Handler {
	h := &Handler{
		secret:   append([]byte(nil), secret...),
		onEvent:  onEvent,
		maxBytes: DefaultMaxBodyBytes,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBytes+1))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if int64(len(body)) > h.maxBytes {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	if err := Verify(h.secret, body, r.Header.Get(HeaderPayloadDigest)); err != nil {
		reason := "signature mismatch"
		if errors.Is(err, ErrInvalidEncoding) {
			reason = "invalid signature encoding"
		}
		h.logger.Warn().Str("reason", reason).Int("bytes", len(body)).Msg("webhook rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	ev, err := Parse(body)
	if err != nil {
		h.logger.Warn().Err(err).Msg("webhook payload could not be parsed")
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	log := h.logger.With().
		Str("type", ev.Type).
		Str("applicant_id", ev.ApplicantID).
		Str("correlation_id", ev.CorrelationID).
		Logger()

	if h.onEvent != nil {
		if err := h.onEvent(r.Context(), ev); err != nil {
			log.Error().Err(err).Msg("webhook handler failed")
			http.Error(w, "handler failed", http.StatusInternalServerError)
			return
		}
	}

	log.Info().Msg("webhook accepted")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
