package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/otiai10/sumsub/internal/api"
	"github.com/otiai10/sumsub/internal/client"
	"github.com/otiai10/sumsub/internal/config"
	"github.com/otiai10/sumsub/internal/logger"
	"github.com/otiai10/sumsub/internal/version"
	"github.com/otiai10/sumsub/internal/webhook"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (environment only when empty)")
	flag.Parse()

	// Load .env.localdev file if it exists (for local development)
	// Silently ignore if file doesn't exist (production uses real env vars)
	_ = godotenv.Load(".env.localdev")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.RequireWebhookSecret(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	l := logger.Init(cfg.Logging)

	// The API client is optional; without credentials events are only logged.
	var c *client.Client
	if err := cfg.RequireAPICredentials(); err == nil {
		c = client.New(cfg.API.AppToken, []byte(cfg.API.SecretKey),
			client.WithBaseURL(cfg.API.BaseURL),
			client.WithTimeout(cfg.API.Timeout),
			client.WithLogger(l),
		)
	} else {
		l.Info().Msg("API credentials not configured, review status lookups disabled")
	}

	handler := webhook.NewHandler([]byte(cfg.Webhook.SecretKey), newEventFunc(l, c),
		webhook.WithMaxBodyBytes(cfg.Webhook.MaxBodyBytes),
		webhook.WithLogger(l),
	)
	router := api.NewRouter(api.RouterConfig{
		WebhookPath:    cfg.Webhook.Path,
		WebhookHandler: handler,
		Logger:         l,
	})
	server := api.NewServer(cfg.Webhook.ListenAddr, router)

	go func() {
		l.Info().
			Str("addr", cfg.Webhook.ListenAddr).
			Str("path", cfg.Webhook.Path).
			Str("hash", version.CommitHash).
			Msg("webhook receiver listening")
		if err := server.Start(); err != nil {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	l.Info().Str("signal", sig.String()).Msg("shutting down")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server shutdown error")
	}
	l.Info().Msg("goodbye")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

// statusFetcher is the part of client.Client used to enrich reviewed events.
type statusFetcher interface {
	GetApplicantStatus(ctx context.Context, applicantID string) (*client.ApplicantStatus, error)
}

// newEventFunc logs every verified event. When a client is available,
// applicantReviewed events are followed by a status lookup.
func newEventFunc(l zerolog.Logger, c *client.Client) webhook.EventFunc {
	if c == nil {
		return eventFunc(l, nil)
	}
	return eventFunc(l, c)
}

func eventFunc(l zerolog.Logger, fetcher statusFetcher) webhook.EventFunc {
	return func(ctx context.Context, ev *webhook.Event) error {
		entry := l.Info().
			Str("type", ev.Type).
			Str("applicant_id", ev.ApplicantID).
			Str("external_user_id", ev.ExternalUserID).
			Str("review_status", ev.ReviewStatus)
		if ev.ReviewResult != nil {
			entry = entry.Str("review_answer", ev.ReviewResult.ReviewAnswer)
		}
		entry.Msg("verification event")

		if fetcher == nil || ev.Type != webhook.EventApplicantReviewed || ev.ApplicantID == "" {
			return nil
		}
		status, err := fetcher.GetApplicantStatus(ctx, ev.ApplicantID)
		if err != nil {
			// Answering 500 makes the service redeliver the event.
			return err
		}
		answer := ""
		if status.ReviewResult != nil {
			answer = status.ReviewResult.ReviewAnswer
		}
		l.Info().
			Str("applicant_id", ev.ApplicantID).
			Str("review_status", status.ReviewStatus).
			Str("review_answer", answer).
			Msg("applicant status")
		return nil
	}
}
