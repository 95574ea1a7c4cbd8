package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultManagementBase is the Supabase management API root.
const DefaultManagementBase = "https://api.supabase.com/v1"

// CallError is returned for any non-2xx response. The body is carried
// verbatim so callers can surface the vendor's diagnostic text.
type CallError struct {
	StatusCode int
	Body       string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("API call failed with status %d: %s", e.StatusCode, e.Body)
}

// Session is an authenticated capability against one Supabase project.
// Construct one per run; it holds no state beyond the credentials and the
// HTTP client. Exactly one attempt per call, no retries, no caching.
type Session struct {
	Credentials    Credentials
	ManagementBase string
	HTTPClient     *http.Client
}

// NewSession validates the credential bundle and returns a session.
// SUPABASE_API_URL overrides the management API root when set.
func NewSession(creds Credentials) (*Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	base := DefaultManagementBase
	if v := os.Getenv("SUPABASE_API_URL"); v != "" {
		base = v
	}
	return &Session{
		Credentials:    creds,
		ManagementBase: base,
		HTTPClient:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Management issues a GET against the management API with the
// high-privilege access token and decodes the JSON response into out.
func (s *Session) Management(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.ManagementBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Credentials.ManagementKey)
	return s.do(req, out)
}

// DataPlane issues a request against the project endpoint using the
// service key. A non-nil body is JSON-encoded.
func (s *Session) DataPlane(ctx context.Context, method, path string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(raw)
	}
	url := strings.TrimSuffix(s.Credentials.EndpointURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", s.Credentials.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+s.Credentials.ServiceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req, out)
}

func (s *Session) do(req *http.Request, out interface{}) error {
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		// Transport fault: no status code to report.
		return fmt.Errorf("request to %s failed: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &CallError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
