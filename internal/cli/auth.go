package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/playforge/playpub/internal/auth"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect publishing credentials",
		Long: `Inspect the Application Default Credentials used for publishing.

playpub never stores credentials itself: the chain reads
GOOGLE_APPLICATION_CREDENTIALS (a service account or Workload Identity
Federation credential file), GOOGLE_APPLICATION_CREDENTIALS_JSON (the same,
inline), or falls through to gcloud / the metadata server.`,
	}

	cmd.AddCommand(newAuthStatusCmd())

	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show credential source and verify the chain resolves",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return runAuthStatus(ctx, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func runAuthStatus(ctx context.Context, output string) error {
	d := auth.Diagnose()

	data := map[string]interface{}{
		"Source": d.Source,
	}
	if d.CredentialType != "" {
		data["Credential type"] = d.CredentialType
	}
	if d.Audience != "" {
		data["Audience"] = d.Audience
	}

	creds, err := auth.Load(ctx)
	if err != nil {
		dw := NewDataWriter(colorOutput, output)
		_ = dw.WriteKeyValue("Credential source", data)
		return err
	}

	if creds.ProjectID() != "" {
		data["Project"] = creds.ProjectID()
	}
	if tok := creds.Token(); tok != nil {
		if !tok.Expiry.IsZero() {
			data["Token expires"] = tok.Expiry.Format(time.RFC3339)
		}
		if claims, ok := auth.PeekClaims(tok.AccessToken); ok {
			if claims.Issuer != "" {
				data["Issuer"] = claims.Issuer
			}
			if claims.Email != "" {
				data["Email"] = claims.Email
			}
		}
	}

	dw := NewDataWriter(colorOutput, output)
	if err := dw.WriteKeyValue("Credential source", data); err != nil {
		return err
	}
	Success("Credentials resolved for the androidpublisher scope")
	return nil
}
