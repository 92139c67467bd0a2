package main

import (
	"github.com/spf13/cobra"

	"github.com/otiai10/sumsub/internal/client"
)

func newHealthCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			status, err := c.GetAPIHealthStatus(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
}

func newApplicantCommand(app *cli) *cobra.Command {
	return newSubcommandGroup("applicant", "Manage applicants",
		newApplicantCreateCommand(app),
		newApplicantGetCommand(app),
		newApplicantStatusCommand(app),
	)
}

func newApplicantCreateCommand(app *cli) *cobra.Command {
	var (
		level          string
		externalUserID string
		email          string
		phone          string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an applicant at a verification level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			if externalUserID == "" {
				externalUserID = client.NewExternalUserID()
			}
			applicant, err := c.CreateApplicant(cmd.Context(), client.CreateApplicantRequest{
				ExternalUserID: externalUserID,
				Email:          email,
				Phone:          phone,
			}, level)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), applicant)
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "verification level name")
	cmd.Flags().StringVar(&externalUserID, "external-user-id", "", "external user id (random UUID when empty)")
	cmd.Flags().StringVar(&email, "email", "", "applicant email")
	cmd.Flags().StringVar(&phone, "phone", "", "applicant phone")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func newApplicantGetCommand(app *cli) *cobra.Command {
	var external bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch an applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			var applicant *client.Applicant
			if external {
				applicant, err = c.GetApplicantByExternalUserID(cmd.Context(), args[0])
			} else {
				applicant, err = c.GetApplicant(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), applicant)
		},
	}
	cmd.Flags().BoolVar(&external, "external", false, "treat <id> as an external user id")
	return cmd
}

func newApplicantStatusCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show the review status of an applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			status, err := c.GetApplicantStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
}

func newAccessTokenCommand(app *cli) *cobra.Command {
	var (
		level          string
		externalUserID string
		ttl            int
	)
	cmd := &cobra.Command{
		Use:   "access-token",
		Short: "Generate a WebSDK access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			tok, err := c.GenerateAccessToken(cmd.Context(), level, externalUserID, ttl)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tok)
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "verification level name")
	cmd.Flags().StringVar(&externalUserID, "external-user-id", "", "external user id")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "token lifetime in seconds (service default when 0)")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}
