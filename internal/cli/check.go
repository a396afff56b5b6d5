package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/typeguard/internal/logging"
	"github.com/aretw0/typeguard/internal/metrics"
	"github.com/aretw0/typeguard/internal/presentation/tui"
	"github.com/aretw0/typeguard/pkg/schema"
)

// ErrCheckFailed is returned by Check when at least one candidate fails.
var ErrCheckFailed = errors.New("validation failed")

// Check validates every candidate of every document against the schema and
// prints one result line per candidate.
func Check(ctx context.Context, opts CheckOptions) (CheckResult, error) {
	var result CheckResult

	opts = withDefaults(opts)
	logger := opts.Logger

	fs, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return result, err
	}

	var compileOpts []schema.CompileOption
	if opts.Lenient {
		compileOpts = append(compileOpts, schema.Lenient())
	}
	validator, err := schema.Compile(fs, compileOpts...)
	if err != nil {
		return result, fmt.Errorf("%s: %w", opts.SchemaPath, err)
	}
	schemaName := strings.TrimSuffix(filepath.Base(opts.SchemaPath), filepath.Ext(opts.SchemaPath))
	logger.Debug("schema compiled", "schema", opts.SchemaPath, "fields", validator.String())

	docs := opts.Documents
	if len(docs) == 0 {
		docs = []string{stdinName}
	}

	printer := tui.NewPrinter(opts.Out, opts.Color)
	for _, name := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		data, err := readSource(name, opts.Stdin)
		if err != nil {
			return result, err
		}
		decoded, err := decodeDocuments(data)
		if err != nil {
			return result, fmt.Errorf("%s: %w", name, err)
		}

		for range decoded {
			opts.Metrics.Document()
		}

		for _, c := range expand(name, decoded) {
			result.Checked++
			err := validator.Check(c.value)
			opts.Metrics.Candidate(schemaName, err == nil)
			if err == nil {
				logger.Debug("candidate passed", "candidate", c.label)
				printer.Pass(c.label)
				continue
			}

			result.Failed++
			logger.Warn("candidate failed", "candidate", c.label, "error", err)
			printer.Fail(c.label, reasons(err)...)
		}
	}

	printer.Summary(result.Checked, result.Failed)
	if !result.OK() {
		return result, ErrCheckFailed
	}
	return result, nil
}

func withDefaults(opts CheckOptions) CheckOptions {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewRecorder()
	}
	return opts
}

// reasons flattens a Check error into one line per failing field.
func reasons(err error) []string {
	errs := schema.ValidationErrors(err)
	if errs == nil {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		// nested array failures span several lines
		out = append(out, strings.ReplaceAll(strings.TrimSpace(e.Error()), "\n", "; "))
	}
	return out
}
