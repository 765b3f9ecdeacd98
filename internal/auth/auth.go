package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// PublisherScope is the OAuth scope required by the Play Developer API.
const PublisherScope = "https://www.googleapis.com/auth/androidpublisher"

// Environment variables consumed by the credential chain. The JSON variant
// carries the credential inline, which is convenient for CI secrets.
const (
	EnvCredentialsFile = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvCredentialsJSON = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
)

// Credentials wraps resolved Application Default Credentials scoped to the
// publishing API, with the access token already refreshed.
type Credentials struct {
	creds *google.Credentials
	token *oauth2.Token
}

// Error is a fatal credential-acquisition failure. It carries diagnostics
// about the credential source to aid manual debugging; there is no retry.
type Error struct {
	Reason      string
	Err         error
	Diagnostics Diagnostics
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "authentication failed: %s: %v", e.Reason, e.Err)
	fmt.Fprintf(&b, " (source: %s", e.Diagnostics.Source)
	if e.Diagnostics.CredentialType != "" {
		fmt.Fprintf(&b, ", type: %s", e.Diagnostics.CredentialType)
	}
	if e.Diagnostics.Audience != "" {
		fmt.Fprintf(&b, ", audience: %s", e.Diagnostics.Audience)
	}
	b.WriteString(")")
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Load resolves the Application Default Credentials chain for the publishing
// scope. Workload Identity Federation credentials resolve through the same
// chain via an external_account credential file.
//
// A token refresh is probed immediately so a located-but-unusable credential
// fails here rather than halfway through a publish run.
func Load(ctx context.Context) (*Credentials, error) {
	var (
		creds *google.Credentials
		err   error
	)
	if raw := strings.TrimSpace(os.Getenv(EnvCredentialsJSON)); raw != "" {
		creds, err = google.CredentialsFromJSON(ctx, []byte(raw), PublisherScope)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, PublisherScope)
	}
	if err != nil {
		return nil, &Error{Reason: "no credential chain resolved", Err: err, Diagnostics: Diagnose()}
	}

	token, err := creds.TokenSource.Token()
	if err != nil {
		return nil, &Error{Reason: "credential could not be refreshed", Err: err, Diagnostics: Diagnose()}
	}

	return &Credentials{creds: creds, token: token}, nil
}

// ClientOptions returns the client options for building Google API clients
// with these credentials.
func (c *Credentials) ClientOptions() []option.ClientOption {
	return []option.ClientOption{option.WithCredentials(c.creds)}
}

// ProjectID returns the cloud project the credentials belong to, when known.
func (c *Credentials) ProjectID() string { return c.creds.ProjectID }

// Token returns the refreshed access token.
func (c *Credentials) Token() *oauth2.Token { return c.token }
