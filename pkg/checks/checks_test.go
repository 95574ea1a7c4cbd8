package checks

import (
	"net/http"
	"net/http/httptest"

	"github.com/user/supacheck/pkg/supabase"
)

// fakeVendor serves both the data-plane and management-plane endpoints
// the checks call, with per-path handlers.
func fakeVendor(handlers map[string]http.HandlerFunc) (*httptest.Server, *supabase.Session) {
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	ts := httptest.NewServer(mux)
	sess := &supabase.Session{
		Credentials: supabase.Credentials{
			EndpointURL:   ts.URL,
			ServiceKey:    "svc-key",
			ManagementKey: "mgmt-key",
			ProjectRef:    "testref",
		},
		ManagementBase: ts.URL + "/v1",
		HTTPClient:     ts.Client(),
	}
	return ts, sess
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func statusHandler(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		w.Write([]byte(body))
	}
}
