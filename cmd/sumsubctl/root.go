package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/otiai10/sumsub/internal/client"
	"github.com/otiai10/sumsub/internal/config"
	"github.com/otiai10/sumsub/internal/logger"
	"github.com/otiai10/sumsub/internal/security"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	baseURL    string
	verbose    bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCommand() *cobra.Command {
	app := &cli{}

	root := &cobra.Command{
		Use:          "sumsubctl",
		Short:        "Call the verification API and check webhook signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "path to YAML config file (environment only when empty)")
	root.PersistentFlags().StringVar(&app.baseURL, "base-url", "", "override api.base_url")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log requests at debug level")

	root.AddCommand(
		newHealthCommand(app),
		newApplicantCommand(app),
		newAccessTokenCommand(app),
		newSignCommand(app),
		newVerifyWebhookCommand(app),
		newSendWebhookCommand(app),
		newVersionCommand(),
	)
	return root
}

func (a *cli) load(stderr io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		if err := security.ValidateBaseURL(a.baseURL); err != nil {
			return fmt.Errorf("--base-url: %w", err)
		}
		cfg.API.BaseURL = a.baseURL
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg
	a.log = logger.New(stderr, config.LoggingConfig{Level: cfg.Logging.Level, Format: "text"})
	return nil
}

func (a *cli) client() (*client.Client, error) {
	if err := a.cfg.RequireAPICredentials(); err != nil {
		return nil, err
	}
	return client.New(a.cfg.API.AppToken, []byte(a.cfg.API.SecretKey),
		client.WithBaseURL(a.cfg.API.BaseURL),
		client.WithTimeout(a.cfg.API.Timeout),
		client.WithLogger(a.log),
	), nil
}

// newSubcommandGroup returns a command that only groups its children.
func newSubcommandGroup(use, short string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(subcommands...)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
