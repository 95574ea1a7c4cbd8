// Package evidence keeps the session-lifetime audit trail: one entry per
// check per run, append-only, exportable as JSON or CSV.
package evidence

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sync"
)

// Entry is a timestamped summary of one check outcome. Entries from the
// same run share Timestamp and RunID. Never mutated after creation.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Check     string `json:"check"`
	Status    string `json:"status"`
	Details   string `json:"details"`
	RunID     string `json:"runId,omitempty"`
}

// Log is the append-only evidence sequence. Cleared only by explicit
// user action.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{entries: make([]Entry, 0)}
}

// Append adds entries in order.
func (l *Log) Append(entries ...Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entries...)
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear empties the log. Irreversible; callers must confirm with the
// user first.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// ExportJSON renders the entries as a pretty-printed JSON array.
func (l *Log) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(l.Entries(), "", "  ")
}

// ExportCSV renders the entries with the fixed header
// Timestamp,Check,Status,Details. encoding/csv handles RFC 4180 quoting
// (embedded quotes doubled, fields with delimiters quoted).
func (l *Log) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Timestamp", "Check", "Status", "Details"}); err != nil {
		return nil, err
	}
	for _, e := range l.Entries() {
		if err := w.Write([]string{e.Timestamp, e.Check, e.Status, e.Details}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
