// Package checks implements the three Supabase security compliance checks
// (MFA coverage, RLS enablement, PITR configuration) and the runner that
// fans them out against a project.
//
// Status policy: `fail` means the check ran and found a genuine gap;
// `error` means the check could not be completed. The two checks resolve
// their "cannot determine" case differently on purpose: MFA reports error
// (a user list we cannot read might hide non-compliant users), while RLS
// reports pass (a schema without the introspection helper, or with no
// tables, has nothing to be non-compliant).
package checks

// Status is the normalized outcome of a single check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusPending Status = "pending"
	StatusError   Status = "error"
)

// Check names, also the fixed per-run evidence order.
const (
	CheckMFA  = "mfa"
	CheckRLS  = "rls"
	CheckPITR = "pitr"
)

// CheckResult is the normalized outcome of one evaluator.
type CheckResult struct {
	Status  Status      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Results holds one CheckResult per check. It is replaced wholesale on
// every run, never partially merged.
type Results struct {
	MFA  CheckResult `json:"mfa"`
	RLS  CheckResult `json:"rls"`
	PITR CheckResult `json:"pitr"`
}

// PendingResults is the state before any run has executed.
func PendingResults() Results {
	pending := CheckResult{Status: StatusPending, Message: "Not checked yet"}
	return Results{MFA: pending, RLS: pending, PITR: pending}
}

func (r *Results) setByName(name string, res CheckResult) {
	switch name {
	case CheckMFA:
		r.MFA = res
	case CheckRLS:
		r.RLS = res
	case CheckPITR:
		r.PITR = res
	}
}
