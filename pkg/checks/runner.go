package checks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/supacheck/pkg/evidence"
	"github.com/user/supacheck/pkg/supabase"
)

// Evaluator produces a CheckResult against an authenticated session.
type Evaluator func(ctx context.Context, sess *supabase.Session) CheckResult

type namedCheck struct {
	name string
	eval Evaluator
}

// Runner fans the checks out concurrently and turns the outcomes into
// evidence entries. All entries from one run share a timestamp and run id.
type Runner struct {
	checks []namedCheck
	now    func() time.Time
}

// NewRunner returns a runner with the standard three checks in the fixed
// evidence order mfa, rls, pitr.
func NewRunner() *Runner {
	return &Runner{
		checks: []namedCheck{
			{CheckMFA, EvaluateMFA},
			{CheckRLS, EvaluateRLS},
			{CheckPITR, EvaluatePITR},
		},
		now: time.Now,
	}
}

// RunAll runs every check concurrently and waits for all of them. A
// credential validation failure blocks the run entirely. Each check's
// failure handling lives in its evaluator; the runner only recovers
// panics so one misbehaving check cannot abort the others.
func (r *Runner) RunAll(ctx context.Context, creds supabase.Credentials) (Results, []evidence.Entry, error) {
	sess, err := supabase.NewSession(creds)
	if err != nil {
		return PendingResults(), nil, err
	}

	results := PendingResults()
	outcomes := make([]CheckResult, len(r.checks))

	var wg sync.WaitGroup
	for i, c := range r.checks {
		wg.Add(1)
		go func(i int, c namedCheck) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					outcomes[i] = CheckResult{
						Status:  StatusError,
						Message: fmt.Sprintf("%s check crashed: %v", c.name, rec),
					}
				}
			}()
			outcomes[i] = c.eval(ctx, sess)
		}(i, c)
	}
	wg.Wait()

	ts := r.now().UTC().Format(time.RFC3339)
	runID := uuid.NewString()
	entries := make([]evidence.Entry, 0, len(r.checks))
	for i, c := range r.checks {
		results.setByName(c.name, outcomes[i])
		entries = append(entries, evidence.Entry{
			Timestamp: ts,
			RunID:     runID,
			Check:     c.name,
			Status:    string(outcomes[i].Status),
			Details:   outcomes[i].Message,
		})
	}
	return results, entries, nil
}
