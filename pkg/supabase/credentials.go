package supabase

import (
	"fmt"
	"regexp"
)

// Credentials holds the two key tiers needed to audit a Supabase project.
// ServiceKey is the data-plane service_role key (auth admin, PostgREST).
// ManagementKey is a personal access token for the management API
// (subscription tier, backups).
type Credentials struct {
	EndpointURL   string `json:"endpointUrl"`
	ServiceKey    string `json:"serviceKey"`
	ManagementKey string `json:"managementKey"`
	ProjectRef    string `json:"projectRef,omitempty"`
}

// Project URLs look like https://abcdefghij.supabase.co
var projectRefPattern = regexp.MustCompile(`^https://([a-zA-Z0-9-]+)\.supabase\.(co|com|in|net)`)

// ResolveProjectRef returns the explicit project ref if set, otherwise
// derives it from the endpoint URL's subdomain label.
func (c Credentials) ResolveProjectRef() (string, error) {
	if c.ProjectRef != "" {
		return c.ProjectRef, nil
	}
	m := projectRefPattern.FindStringSubmatch(c.EndpointURL)
	if m == nil {
		return "", fmt.Errorf("cannot derive project ref from endpoint URL %q: expected https://<ref>.supabase.co", c.EndpointURL)
	}
	return m[1], nil
}

// Validate reports a usage error before any network call is attempted.
func (c Credentials) Validate() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("endpoint URL is required")
	}
	if c.ServiceKey == "" {
		return fmt.Errorf("service key is required")
	}
	if c.ManagementKey == "" {
		return fmt.Errorf("management access token is required")
	}
	return nil
}
