package auth

import (
	"encoding/json"
	"os"
	"strings"
)

// Diagnostics describes where the credential chain was pointed and what it
// found there. It is attached to auth errors and printed by `auth status`.
type Diagnostics struct {
	// Source is the credential file path, "inline JSON" for the env-carried
	// credential, or "ambient" when the chain falls through to gcloud or the
	// metadata server.
	Source         string
	SourceExists   bool
	CredentialType string
	// Audience is the Workload Identity Federation audience, present on
	// external_account credentials.
	Audience string
}

const ambientSource = "ambient (gcloud or metadata server)"

// Diagnose inspects the credential environment without touching the network.
func Diagnose() Diagnostics {
	if raw := strings.TrimSpace(os.Getenv(EnvCredentialsJSON)); raw != "" {
		d := Diagnostics{Source: "inline JSON (" + EnvCredentialsJSON + ")", SourceExists: true}
		d.CredentialType, d.Audience = inspectCredentialJSON([]byte(raw))
		return d
	}

	path := strings.TrimSpace(os.Getenv(EnvCredentialsFile))
	if path == "" {
		return Diagnostics{Source: ambientSource}
	}

	d := Diagnostics{Source: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return d
	}
	d.SourceExists = true
	d.CredentialType, d.Audience = inspectCredentialJSON(data)
	return d
}

func inspectCredentialJSON(data []byte) (credType, audience string) {
	var info struct {
		Type     string `json:"type"`
		Audience string `json:"audience"`
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return "unreadable", ""
	}
	if info.Type == "" {
		info.Type = "unknown"
	}
	return info.Type, info.Audience
}
