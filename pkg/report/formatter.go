package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/supacheck/pkg/checks"
)

// Formatter renders a Results record for output.
type Formatter interface {
	Format(results checks.Results) ([]byte, error)
}

type JSONFormatter struct{}

func (f *JSONFormatter) Format(results checks.Results) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// TextFormatter renders the plain-text summary used by the CLI and the
// assistant tools.
type TextFormatter struct{}

func (f *TextFormatter) Format(results checks.Results) ([]byte, error) {
	return []byte(Summary(results)), nil
}

// Summary renders one line per check plus a pass/fail/error tally.
func Summary(results checks.Results) string {
	lines := []struct {
		name string
		res  checks.CheckResult
	}{
		{"MFA coverage", results.MFA},
		{"Row Level Security", results.RLS},
		{"Point-in-Time Recovery", results.PITR},
	}

	var sb strings.Builder
	counts := map[checks.Status]int{}
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", strings.ToUpper(string(l.res.Status)), l.name, l.res.Message))
		counts[l.res.Status]++
	}
	sb.WriteString(fmt.Sprintf("\nSummary: %d passed, %d failed, %d errored",
		counts[checks.StatusPass], counts[checks.StatusFail], counts[checks.StatusError]))
	return sb.String()
}
