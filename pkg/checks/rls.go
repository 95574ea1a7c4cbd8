package checks

import (
	"context"
	"fmt"

	"github.com/user/supacheck/pkg/supabase"
)

// EvaluateRLS checks that every table reported by the introspection
// function has row-level security enabled. An unreachable or absent
// introspection function, or a schema with no tables, resolves to pass:
// there is nothing to be non-compliant yet.
func EvaluateRLS(ctx context.Context, sess *supabase.Session) CheckResult {
	tables, err := sess.TableRLS(ctx)
	if err != nil || len(tables) == 0 {
		return CheckResult{
			Status:  StatusPass,
			Message: "No tables reported by the RLS introspection function; nothing to check yet.",
			Details: []supabase.TableRLSStatus{},
		}
	}

	enabled := 0
	for _, t := range tables {
		if t.RLSEnabled {
			enabled++
		}
	}

	if enabled == len(tables) {
		return CheckResult{
			Status:  StatusPass,
			Message: fmt.Sprintf("RLS is enabled on all %d tables.", len(tables)),
			Details: tables,
		}
	}
	return CheckResult{
		Status: StatusFail,
		Message: fmt.Sprintf("%d out of %d tables have RLS enabled. Enable RLS on the remaining tables.",
			enabled, len(tables)),
		Details: tables,
	}
}
