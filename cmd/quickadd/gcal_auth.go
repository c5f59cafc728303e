package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// newGcalAuthCmd authorizes Google Calendar access once and writes the token
// file the API server reads at startup.
func newGcalAuthCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar with OAuth desktop credentials and save the token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}

			config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("failed to parse credentials, %q must be an OAuth desktop app file: %w", credsPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := config.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("failed to write %s: %w", tokenPath, err)
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar events.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file.")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the token.")

	return cmd
}
