package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/otiai10/sumsub/internal/version"
	"github.com/otiai10/sumsub/internal/webhook"
)

const testWebhookSecret = "my_secret_key"

func newTestRouter(t *testing.T) (http.Handler, *[]*webhook.Event) {
	t.Helper()
	var (
		mu     sync.Mutex
		events []*webhook.Event
	)
	h := webhook.NewHandler([]byte(testWebhookSecret), func(ctx context.Context, ev *webhook.Event) error {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
		return nil
	})
	router := NewRouter(RouterConfig{
		WebhookPath:    "/webhooks/sumsub",
		WebhookHandler: h,
		Logger:         zerolog.Nop(),
	})
	return router, &events
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health body is not JSON: %v", err)
	}
	if body["status"] != "ok" || body["hash"] != version.CommitHash {
		t.Errorf("body = %v", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestWebhookRoute(t *testing.T) {
	payload := `{"type": "applicantReviewed", "applicantId": "5cb56e8e0a975a35f333cb83"}`

	tests := []struct {
		name       string
		digest     string
		wantStatus int
		wantEvents int
	}{
		{"valid digest", webhook.DigestHex([]byte(testWebhookSecret), []byte(payload)), http.StatusOK, 1},
		{"wrong digest", webhook.DigestHex([]byte("other"), []byte(payload)), http.StatusUnauthorized, 0},
		{"non-hex digest", "invalid_signature", http.StatusUnauthorized, 0},
		{"missing digest", "", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, events := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/sumsub", strings.NewReader(payload))
			if tt.digest != "" {
				req.Header.Set(webhook.HeaderPayloadDigest, tt.digest)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if len(*events) != tt.wantEvents {
				t.Fatalf("delivered %d events, want %d", len(*events), tt.wantEvents)
			}
			if tt.wantEvents == 1 && (*events)[0].ApplicantID != "5cb56e8e0a975a35f333cb83" {
				t.Errorf("ApplicantID = %q", (*events)[0].ApplicantID)
			}
			if rec.Header().Get(HeaderRequestID) == "" {
				t.Error("response has no X-Request-Id")
			}
		})
	}
}

func TestWebhookRoute_Disabled(t *testing.T) {
	router := NewRouter(RouterConfig{Logger: zerolog.Nop()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhooks/sumsub", strings.NewReader("{}")))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
