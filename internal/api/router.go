package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/otiai10/sumsub/internal/version"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	WebhookPath    string       // e.g. "/webhooks/sumsub"
	WebhookHandler http.Handler // nil disables the webhook route
	Logger         zerolog.Logger
}

// NewRouter creates a router serving /health and the webhook receiver
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	registerPublicRoutes(mux)

	if cfg.WebhookHandler != nil && cfg.WebhookPath != "" {
		mux.Handle(cfg.WebhookPath, cfg.WebhookHandler)
	}

	return applyMiddlewareChain(mux, cfg.Logger)
}

// registerPublicRoutes registers routes that don't require a signature
func registerPublicRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(fmt.Sprintf(`{"status":"ok","hash":"%s"}`, version.CommitHash)))
	})
}

// applyMiddlewareChain wraps a handler with the standard middleware stack
func applyMiddlewareChain(h http.Handler, logger zerolog.Logger) http.Handler {
	return Chain(
		RequestIDMiddleware(logger),
		RecoveryMiddleware,
		LoggingMiddleware,
	)(h)
}
