package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/typeguard/internal/metrics"
)

// CheckOptions contains all the configuration for the check command.
type CheckOptions struct {
	SchemaPath string
	Documents  []string // File paths, "-" reads Stdin. Empty means Stdin.
	Lenient    bool
	Color      bool

	Stdin   io.Reader
	Out     io.Writer
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// CheckResult summarizes a check run.
type CheckResult struct {
	Checked int
	Failed  int
}

// OK reports whether every candidate passed.
func (r CheckResult) OK() bool {
	return r.Failed == 0
}
