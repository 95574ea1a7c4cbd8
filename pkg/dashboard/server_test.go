package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/user/supacheck/pkg/checks"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/supabase"
)

// fakeVendor emulates enough of the vendor API for a full run: no users,
// all tables RLS-enabled, pro tier with PITR on.
func fakeVendor(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[{"id":"1","email":"a@example.com","factors":[{"id":"f1"}]}]}`))
	})
	mux.HandleFunc("/rest/v1/rpc/get_table_rls_status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"orders","rls_enabled":true,"schema":"public"}]`))
	})
	mux.HandleFunc("/v1/projects/testref/subscription", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tier":"pro"}`))
	})
	mux.HandleFunc("/v1/projects/testref/database/backups/info", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pitr_enabled":true}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	t.Setenv("SUPABASE_API_URL", ts.URL+"/v1")
	return ts
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	vendor := fakeVendor(t)
	srv := NewServer(supabase.Credentials{
		EndpointURL:   vendor.URL,
		ServiceKey:    "svc",
		ManagementKey: "mgmt",
		ProjectRef:    "testref",
	})
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestResultsPendingBeforeFirstRun(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/results")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var results checks.Results
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if results.MFA.Status != checks.StatusPending {
		t.Errorf("expected pending before first run, got %s", results.MFA.Status)
	}
}

func TestRunEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/run", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var results checks.Results
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if results.MFA.Status != checks.StatusPass || results.RLS.Status != checks.StatusPass || results.PITR.Status != checks.StatusPass {
		t.Errorf("expected all pass against the healthy fake, got %+v", results)
	}

	// The run appended three evidence entries.
	evResp, err := http.Get(ts.URL + "/api/evidence")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer evResp.Body.Close()
	var entries []evidence.Entry
	if err := json.NewDecoder(evResp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after one run, got %d", len(entries))
	}
	if entries[0].Timestamp != entries[1].Timestamp || entries[1].Timestamp != entries[2].Timestamp {
		t.Error("run entries should share one timestamp")
	}
}

func TestExportHeaders(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/evidence/export?format=csv")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected csv content type, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "evidence-log.csv") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	resp2, err := http.Get(ts.URL + "/api/evidence/export?format=xml")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown format should 400, got %d", resp2.StatusCode)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	ts := testServer(t)

	// Seed the log with one run.
	if _, err := http.Post(ts.URL+"/api/run", "application/json", nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/evidence", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unconfirmed clear should 400, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/evidence?confirm=true", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("confirmed clear should 204, got %d", resp.StatusCode)
	}

	evResp, err := http.Get(ts.URL + "/api/evidence")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer evResp.Body.Close()
	var entries []evidence.Entry
	_ = json.NewDecoder(evResp.Body).Decode(&entries)
	if len(entries) != 0 {
		t.Errorf("log should be empty after clear, got %d entries", len(entries))
	}
}
