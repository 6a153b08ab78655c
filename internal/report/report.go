// Package report records the outcome of compiler runs.
//
// A report writer appends one row per run, success or failure, so build
// machines can keep an audit trail of generated artifacts without any
// persistent state in the tool itself.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RunReport is one row describing a single compiler run.
type RunReport struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
	Compiler   string    `json:"compiler"`
	Args       []string  `json:"args"`
	ExitCode   int       `json:"exit_code"`
	Error      string    `json:"error,omitempty"`
}

// Writer appends run reports to a storage.
type Writer interface {
	Write(report RunReport) error
}

// NewWriter creates a report writer for the given URI.
func NewWriter(ctx context.Context, uri string) (Writer, error) {
	scheme, path, found := strings.Cut(uri, "://")
	if !found || scheme == "" || path == "" {
		return nil, fmt.Errorf("malformed report URI %s", uri)
	}
	switch scheme {
	case "jsonfile":
		return NewJSONWriter(ctx, path)
	default:
		return nil, fmt.Errorf("unknown schema %s in report URI %s", scheme, uri)
	}
}
