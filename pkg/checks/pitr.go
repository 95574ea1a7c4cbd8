package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/supacheck/pkg/supabase"
)

const freeTierMessage = "Point-in-time recovery is not available on the Free tier. Upgrade to Pro or above and enable PITR in the project's backup settings."

// EvaluatePITR checks that point-in-time recovery is enabled. Two
// dependent management-plane calls: subscription tier first, then the
// backup descriptor. A failed subscription lookup is deliberately read as
// "no backup capability" (free tier), not as an evaluator error.
func EvaluatePITR(ctx context.Context, sess *supabase.Session) CheckResult {
	if _, err := sess.Credentials.ResolveProjectRef(); err != nil {
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("Could not resolve project ref: %v", err),
		}
	}

	sub, err := sess.ProjectSubscription(ctx)
	if err != nil {
		return CheckResult{
			Status:  StatusFail,
			Message: freeTierMessage,
			Details: map[string]interface{}{"error": err.Error()},
		}
	}

	if strings.EqualFold(sub.Tier, "free") {
		return CheckResult{
			Status:  StatusFail,
			Message: freeTierMessage,
			Details: map[string]interface{}{"tier": sub.Tier},
		}
	}

	info, err := sess.BackupsInfo(ctx)
	if err != nil {
		return CheckResult{
			Status: StatusFail,
			Message: fmt.Sprintf("PITR is available on the %s tier but is not configured: %v", sub.Tier, err),
			Details: map[string]interface{}{"tier": sub.Tier, "error": err.Error()},
		}
	}

	enabled, ok := info["pitr_enabled"].(bool)
	if !ok {
		return CheckResult{
			Status:  StatusError,
			Message: "Backup descriptor is missing the pitr_enabled field.",
			Details: info,
		}
	}

	details := make(map[string]interface{}, len(info)+2)
	for k, v := range info {
		details[k] = v
	}
	details["tier"] = sub.Tier
	configuration := "disabled"
	if enabled {
		configuration = "enabled"
	}
	details["configuration"] = configuration

	if enabled {
		return CheckResult{
			Status:  StatusPass,
			Message: fmt.Sprintf("PITR is enabled on the %s tier.", sub.Tier),
			Details: details,
		}
	}
	return CheckResult{
		Status: StatusFail,
		Message: fmt.Sprintf("PITR is available on the %s tier but currently disabled. Enable it in the project's backup settings.", sub.Tier),
		Details: details,
	}
}
