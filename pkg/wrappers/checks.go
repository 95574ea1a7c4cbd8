package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/supacheck/pkg/checks"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/report"
	"github.com/user/supacheck/pkg/supabase"
)

// RunChecksWrapper implements the Tool interface for running the
// compliance checks against the configured project.
type RunChecksWrapper struct {
	Runner      *checks.Runner
	Log         *evidence.Log
	Credentials supabase.Credentials
}

func (r *RunChecksWrapper) Name() string {
	return "RunSecurityChecks"
}

func (r *RunChecksWrapper) Description() string {
	return "Runs the Supabase security compliance checks (MFA coverage, Row Level Security, Point-in-Time Recovery) and returns a pass/fail summary. Results are appended to the evidence log."
}

func (r *RunChecksWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"check": map[string]interface{}{
				"type":        "string",
				"description": "Optional check to report on ('mfa', 'rls' or 'pitr'). All checks always run; this narrows the reported output.",
			},
		},
	}
}

func (r *RunChecksWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if r.Runner == nil {
		return "Error: checks runner not initialized.", nil
	}

	if progress != nil {
		progress("Running security checks...")
	}

	results, entries, err := r.Runner.RunAll(ctx, r.Credentials)
	if err != nil {
		return fmt.Sprintf("Cannot run checks: %v. Configure credentials with 'supacheck config setup'.", err), nil
	}
	if r.Log != nil {
		r.Log.Append(entries...)
	}

	if name, _ := args["check"].(string); name != "" {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, e := range entries {
			if e.Check == name {
				return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(e.Status), name, e.Details), nil
			}
		}
		return fmt.Sprintf("Unknown check %q. Available: mfa, rls, pitr.", name), nil
	}

	return report.Summary(results), nil
}
