package checks

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/user/supacheck/pkg/supabase"
)

func TestRLSAllTablesEnabled(t *testing.T) {
	ts, sess := fakeVendor(map[string]http.HandlerFunc{
		"/rest/v1/rpc/get_table_rls_status": jsonHandler(`[
			{"name":"orders","rls_enabled":true,"schema":"public"},
			{"name":"users","rls_enabled":true,"schema":"public"}
		]`),
	})
	defer ts.Close()

	res := EvaluateRLS(context.Background(), sess)
	if res.Status != StatusPass {
		t.Fatalf("expected pass, got %s (%s)", res.Status, res.Message)
	}
}

func TestRLSPartialEnablementFails(t *testing.T) {
	ts, sess := fakeVendor(map[string]http.HandlerFunc{
		"/rest/v1/rpc/get_table_rls_status": jsonHandler(`[
			{"name":"orders","rls_enabled":true,"schema":"public"},
			{"name":"users","rls_enabled":false,"schema":"public"}
		]`),
	})
	defer ts.Close()

	res := EvaluateRLS(context.Background(), sess)
	if res.Status != StatusFail {
		t.Fatalf("expected fail, got %s (%s)", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "1 out of 2") {
		t.Errorf("message should report '1 out of 2', got %q", res.Message)
	}
	tables, ok := res.Details.([]supabase.TableRLSStatus)
	if !ok || len(tables) != 2 {
		t.Errorf("details should carry the full table list, got %#v", res.Details)
	}
}

func TestRLSIntrospectionFailureIsPass(t *testing.T) {
	ts, sess := fakeVendor(map[string]http.HandlerFunc{
		"/rest/v1/rpc/get_table_rls_status": statusHandler(http.StatusNotFound, `{"message":"function not found"}`),
	})
	defer ts.Close()

	res := EvaluateRLS(context.Background(), sess)
	if res.Status != StatusPass {
		t.Fatalf("unavailable introspection should pass, got %s", res.Status)
	}
	tables, ok := res.Details.([]supabase.TableRLSStatus)
	if !ok || len(tables) != 0 {
		t.Errorf("details should be empty, got %#v", res.Details)
	}
}

func TestRLSEmptyResultIsPass(t *testing.T) {
	ts, sess := fakeVendor(map[string]http.HandlerFunc{
		"/rest/v1/rpc/get_table_rls_status": jsonHandler(`[]`),
	})
	defer ts.Close()

	res := EvaluateRLS(context.Background(), sess)
	if res.Status != StatusPass {
		t.Fatalf("no tables should pass, got %s", res.Status)
	}
}
