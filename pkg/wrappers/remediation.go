package wrappers

import (
	"context"
	"fmt"
	"strings"
)

// RemediationWrapper implements the Tool interface for explaining how to
// fix a failing check.
type RemediationWrapper struct{}

var remediationAdvice = map[string]string{
	"mfa": `Issue: users without a second authentication factor.
Risk: a single leaked password grants full account access.
Fix: enable MFA enforcement in Authentication settings and require existing
users to enroll a TOTP factor on next sign-in. Consider disabling password-only
sign-in for privileged accounts.`,
	"rls": `Issue: tables without Row Level Security.
Risk: any client holding the anon key can read or modify every row.
Fix: run 'ALTER TABLE <table> ENABLE ROW LEVEL SECURITY;' for each exposed
table, then add policies granting only the access each role needs. Tables with
RLS enabled but no policies deny all access, which is the safe starting point.`,
	"pitr": `Issue: point-in-time recovery is unavailable or disabled.
Risk: data loss from accidental deletes or bad migrations is unrecoverable
beyond the daily backup granularity.
Fix: upgrade the project to Pro or above, then enable PITR in Database >
Backups. Pick a retention window that covers your incident response time.`,
}

func (r *RemediationWrapper) Name() string {
	return "GetRemediationAdvice"
}

func (r *RemediationWrapper) Description() string {
	return "Explains the risk behind a failing check ('mfa', 'rls' or 'pitr') and how to remediate it."
}

func (r *RemediationWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"check": map[string]interface{}{
				"type":        "string",
				"description": "The check to get advice for: 'mfa', 'rls' or 'pitr'.",
			},
		},
	}
}

func (r *RemediationWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	check, _ := args["check"].(string)
	advice, ok := remediationAdvice[strings.ToLower(strings.TrimSpace(check))]
	if !ok {
		return fmt.Sprintf("Unknown check %q. Available: mfa, rls, pitr.", check), nil
	}
	return advice, nil
}
