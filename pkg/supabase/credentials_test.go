package supabase

import "testing"

func TestResolveProjectRefFromURL(t *testing.T) {
	creds := Credentials{EndpointURL: "https://abcdefghij.supabase.co"}
	ref, err := creds.ResolveProjectRef()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "abcdefghij" {
		t.Errorf("expected ref 'abcdefghij', got %q", ref)
	}
}

func TestResolveProjectRefExplicitWins(t *testing.T) {
	creds := Credentials{EndpointURL: "https://abcdefghij.supabase.co", ProjectRef: "explicit"}
	ref, err := creds.ResolveProjectRef()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "explicit" {
		t.Errorf("expected explicit ref to win, got %q", ref)
	}
}

func TestResolveProjectRefMalformedURL(t *testing.T) {
	for _, url := range []string{
		"",
		"http://abcdefghij.supabase.co", // not https
		"https://supabase.co",
		"https://example.com",
		"localhost:54321",
	} {
		creds := Credentials{EndpointURL: url}
		if _, err := creds.ResolveProjectRef(); err == nil {
			t.Errorf("expected derivation error for %q", url)
		}
	}
}

func TestValidateRequiresAllFields(t *testing.T) {
	full := Credentials{
		EndpointURL:   "https://abcdefghij.supabase.co",
		ServiceKey:    "svc",
		ManagementKey: "mgmt",
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("complete bundle should validate: %v", err)
	}

	missing := []Credentials{
		{ServiceKey: "svc", ManagementKey: "mgmt"},
		{EndpointURL: "https://x.supabase.co", ManagementKey: "mgmt"},
		{EndpointURL: "https://x.supabase.co", ServiceKey: "svc"},
	}
	for i, c := range missing {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
