package checks

import (
	"context"
	"fmt"

	"github.com/user/supacheck/pkg/supabase"
)

// UserMFAStatus is the per-user projection reported in details. Only the
// email and the derived flag are kept; raw user records are never exposed.
type UserMFAStatus struct {
	Email      string `json:"email"`
	MFAEnabled bool   `json:"mfaEnabled"`
}

// EvaluateMFA checks that every auth user has at least one enrolled MFA
// factor. Only the first page of users is evaluated (known limitation).
func EvaluateMFA(ctx context.Context, sess *supabase.Session) CheckResult {
	users, err := sess.ListUsers(ctx)
	if err != nil {
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("Could not list users: %v", err),
			Details: map[string]interface{}{"error": err.Error()},
		}
	}

	if len(users) == 0 {
		return CheckResult{
			Status:  StatusPass,
			Message: "No users found; nothing to enforce.",
			Details: []UserMFAStatus{},
		}
	}

	projection := make([]UserMFAStatus, 0, len(users))
	enabled := 0
	for _, u := range users {
		on := len(u.Factors) > 0
		if on {
			enabled++
		}
		projection = append(projection, UserMFAStatus{Email: u.Email, MFAEnabled: on})
	}

	if enabled == len(users) {
		return CheckResult{
			Status:  StatusPass,
			Message: fmt.Sprintf("All %d users have MFA enabled.", len(users)),
			Details: projection,
		}
	}
	return CheckResult{
		Status: StatusFail,
		Message: fmt.Sprintf("%d out of %d users have MFA enabled. Require MFA enrollment for the remaining %d.",
			enabled, len(users), len(users)-enabled),
		Details: projection,
	}
}
