package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/supacheck/pkg/checks"
)

func sampleResults() checks.Results {
	return checks.Results{
		MFA:  checks.CheckResult{Status: checks.StatusPass, Message: "All 2 users have MFA enabled."},
		RLS:  checks.CheckResult{Status: checks.StatusFail, Message: "1 out of 2 tables have RLS enabled."},
		PITR: checks.CheckResult{Status: checks.StatusError, Message: "request failed"},
	}
}

func TestSummaryListsEveryCheck(t *testing.T) {
	out := Summary(sampleResults())
	for _, want := range []string{"[PASS] MFA coverage", "[FAIL] Row Level Security", "[ERROR] Point-in-Time Recovery"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "1 passed, 1 failed, 1 errored") {
		t.Errorf("summary tally wrong:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := (&JSONFormatter{}).Format(sampleResults())
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	var parsed checks.Results
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.RLS.Status != checks.StatusFail {
		t.Errorf("round trip lost the status: %+v", parsed)
	}
}
