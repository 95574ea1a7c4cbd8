package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testCreds(url string) Credentials {
	return Credentials{
		EndpointURL:   url,
		ServiceKey:    "svc-key",
		ManagementKey: "mgmt-key",
		ProjectRef:    "testref",
	}
}

func testSession(ts *httptest.Server) *Session {
	return &Session{
		Credentials:    testCreds(ts.URL),
		ManagementBase: ts.URL + "/v1",
		HTTPClient:     ts.Client(),
	}
}

func TestManagementSendsBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"tier":"pro"}`))
	}))
	defer ts.Close()

	var out map[string]string
	if err := testSession(ts).Management(context.Background(), "/projects/testref/subscription", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer mgmt-key" {
		t.Errorf("expected management bearer token, got %q", gotAuth)
	}
	if out["tier"] != "pro" {
		t.Errorf("response not decoded: %v", out)
	}
}

func TestDataPlaneSendsServiceKey(t *testing.T) {
	var gotAPIKey, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"users":[]}`))
	}))
	defer ts.Close()

	if _, err := testSession(ts).ListUsers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAPIKey != "svc-key" {
		t.Errorf("expected apikey header, got %q", gotAPIKey)
	}
	if gotAuth != "Bearer svc-key" {
		t.Errorf("expected service bearer token, got %q", gotAuth)
	}
}

func TestNonSuccessStatusBecomesCallError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"project not found"}`))
	}))
	defer ts.Close()

	err := testSession(ts).Management(context.Background(), "/projects/testref/subscription", nil)
	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("expected CallError, got %v", err)
	}
	if callErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", callErr.StatusCode)
	}
	if callErr.Body != `{"message":"project not found"}` {
		t.Errorf("body not carried verbatim: %q", callErr.Body)
	}
}

func TestTransportFaultHasNoStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	sess := testSession(ts)
	sess.HTTPClient = http.DefaultClient
	err := sess.Management(context.Background(), "/projects/testref/subscription", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		t.Errorf("transport fault should not be a CallError, got status %d", callErr.StatusCode)
	}
}

func TestNewSessionRejectsIncompleteBundle(t *testing.T) {
	if _, err := NewSession(Credentials{EndpointURL: "https://x.supabase.co"}); err == nil {
		t.Fatal("expected validation error")
	}
	sess, err := NewSession(testCreds("https://x.supabase.co"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ManagementBase != DefaultManagementBase {
		t.Errorf("expected default management base, got %q", sess.ManagementBase)
	}
}
