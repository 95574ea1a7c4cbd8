package wrappers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/user/supacheck/pkg/evidence"
)

// ShowEvidenceWrapper implements the Tool interface for inspecting the
// evidence log.
type ShowEvidenceWrapper struct {
	Log *evidence.Log
}

func (s *ShowEvidenceWrapper) Name() string {
	return "ShowEvidenceLog"
}

func (s *ShowEvidenceWrapper) Description() string {
	return "Shows the evidence log: one timestamped entry per check per run from this session."
}

func (s *ShowEvidenceWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (s *ShowEvidenceWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if s.Log == nil || s.Log.Len() == 0 {
		return "The evidence log is empty. Run the security checks first.", nil
	}

	var sb strings.Builder
	entries := s.Log.Entries()
	sb.WriteString(fmt.Sprintf("Evidence log (%d entries):\n", len(entries)))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s  %-4s  %-5s  %s\n", e.Timestamp, e.Check, strings.ToUpper(e.Status), e.Details))
	}
	return sb.String(), nil
}

// ExportEvidenceWrapper implements the Tool interface for writing the
// evidence log to a file.
type ExportEvidenceWrapper struct {
	Log *evidence.Log
}

func (e *ExportEvidenceWrapper) Name() string {
	return "ExportEvidence"
}

func (e *ExportEvidenceWrapper) Description() string {
	return "Exports the evidence log to a file for audit purposes. Supports 'json' (pretty-printed array) and 'csv' formats."
}

func (e *ExportEvidenceWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Export format: 'json' (default) or 'csv'.",
			},
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional output filename (default: evidence-log.json or evidence-log.csv).",
			},
		},
	}
}

func (e *ExportEvidenceWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if e.Log == nil {
		return "Error: evidence log not initialized.", nil
	}

	format, _ := args["format"].(string)
	if format == "" {
		format = "json"
	}

	var data []byte
	var err error
	var defaultName string
	switch strings.ToLower(format) {
	case "json":
		data, err = e.Log.ExportJSON()
		defaultName = "evidence-log.json"
	case "csv":
		data, err = e.Log.ExportCSV()
		defaultName = "evidence-log.csv"
	default:
		return fmt.Sprintf("Unknown format %q. Use 'json' or 'csv'.", format), nil
	}
	if err != nil {
		return fmt.Sprintf("Error exporting evidence: %v", err), nil
	}

	filename := defaultName
	if val, ok := args["filename"].(string); ok && val != "" {
		filename = val
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Sprintf("Error writing %s: %v", filename, err), nil
	}
	return fmt.Sprintf("Exported %d evidence entries to '%s'.", e.Log.Len(), filename), nil
}
