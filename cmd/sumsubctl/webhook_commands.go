package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/otiai10/sumsub/internal/signature"
	"github.com/otiai10/sumsub/internal/version"
	"github.com/otiai10/sumsub/internal/webhook"
)

// newSignCommand prints the auth headers for a request, for debugging
// signature mismatches against the service.
func newSignCommand(app *cli) *cobra.Command {
	var (
		body     string
		bodyFile string
		ts       int64
	)
	cmd := &cobra.Command{
		Use:   "sign <METHOD> <path-and-query>",
		Short: "Print the auth headers for a request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.cfg.RequireAPICredentials(); err != nil {
				return err
			}
			payload, err := readBody(body, bodyFile)
			if err != nil {
				return err
			}

			var opts []signature.SignerOption
			if ts > 0 {
				opts = append(opts, signature.WithClock(func() time.Time { return time.Unix(ts, 0) }))
			}
			signer := signature.NewSigner(app.cfg.API.AppToken, []byte(app.cfg.API.SecretKey), opts...)
			h := signer.Headers(strings.ToUpper(args[0]), args[1], payload)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", signature.HeaderAppToken, h.AppToken)
			fmt.Fprintf(out, "%s: %s\n", signature.HeaderAccessSignature, h.AccessSignature)
			fmt.Fprintf(out, "%s: %s\n", signature.HeaderAccessTimestamp, h.AccessTimestamp)
			return nil
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "request body")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "read request body from file")
	cmd.Flags().Int64Var(&ts, "ts", 0, "unix timestamp to sign with (now when 0)")
	return cmd
}

func newVerifyWebhookCommand(app *cli) *cobra.Command {
	var (
		payloadFile string
		digest      string
	)
	cmd := &cobra.Command{
		Use:   "verify-webhook",
		Short: "Check a webhook payload against its X-Payload-Digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.cfg.RequireWebhookSecret(); err != nil {
				return err
			}
			payload, err := os.ReadFile(payloadFile)
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}
			if err := webhook.Verify([]byte(app.cfg.Webhook.SecretKey), payload, digest); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&payloadFile, "payload-file", "", "file holding the raw webhook body")
	cmd.Flags().StringVar(&digest, "digest", "", "value of the X-Payload-Digest header")
	_ = cmd.MarkFlagRequired("payload-file")
	_ = cmd.MarkFlagRequired("digest")
	return cmd
}

// newSendWebhookCommand posts a signed payload to a local receiver.
func newSendWebhookCommand(app *cli) *cobra.Command {
	var (
		url         string
		payloadFile string
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "send-webhook",
		Short: "Deliver a signed webhook payload to a receiver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.cfg.RequireWebhookSecret(); err != nil {
				return err
			}
			payload, err := os.ReadFile(payloadFile)
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}
			if url == "" {
				url, err = localReceiverURL(app.cfg.Webhook.ListenAddr, app.cfg.Webhook.Path)
				if err != nil {
					return err
				}
			}

			result := webhook.NewSender(webhook.WithTimeout(timeout)).
				Send(cmd.Context(), url, []byte(app.cfg.Webhook.SecretKey), payload)
			app.log.Debug().
				Str("url", result.URL).
				Int("status", result.StatusCode).
				Dur("duration", result.ResponseTime).
				Msg("webhook delivered")
			if !result.Success {
				return errors.New(result.ErrorMessage)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "delivered: %d\n", result.StatusCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "receiver URL (derived from webhook config when empty)")
	cmd.Flags().StringVar(&payloadFile, "payload-file", "", "file holding the JSON body")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "delivery timeout")
	_ = cmd.MarkFlagRequired("payload-file")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build commit hash",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.CommitHash)
		},
	}
}

// localReceiverURL points at a receiver on this machine listening on
// listenAddr, whatever interface it is bound to.
func localReceiverURL(listenAddr, path string) (string, error) {
	_, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "", fmt.Errorf("webhook.listen_addr %q: %w", listenAddr, err)
	}
	return "http://" + net.JoinHostPort("localhost", port) + path, nil
}

func readBody(body, bodyFile string) ([]byte, error) {
	if bodyFile != "" {
		b, err := os.ReadFile(bodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		return b, nil
	}
	if body == "" {
		return nil, nil
	}
	return []byte(body), nil
}
