package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jtcooper10/proto-build/internal/cmdopts"
	"github.com/jtcooper10/proto-build/internal/compiler"
	"github.com/jtcooper10/proto-build/internal/log"
	"github.com/jtcooper10/proto-build/internal/report"
)

// Driver is the struct that turns the parsed options into one complete build:
// resolve the layout and toolchain, load the manifest, prepare the output
// directories, run the compiler and record the outcome.
type Driver struct {
	*cmdopts.Options
	logger log.Logger
}

// New creates a new Driver instance
func New(ctx context.Context, opts *cmdopts.Options) *Driver {
	return &Driver{
		Options: opts,
		logger:  log.GetLogger(ctx),
	}
}

// Run executes the build described by the options.
func (d *Driver) Run(ctx context.Context) error {
	l, err := d.GetLayout()
	if err != nil {
		return err
	}
	m, err := d.ManifestReaderWriter.GetManifest()
	if err != nil {
		return err
	}
	inv := compiler.Assemble(l, d.GetToolchain(l), m)
	if d.Compiler.DryRun {
		fmt.Fprintln(d.OutputWriter, inv)
		return nil
	}
	if err = l.Ensure(d.Layout.Clean); err != nil {
		return err
	}
	d.logger.
		WithField("compiler", inv.Path).
		WithField("args", inv.Args).
		Debug("invoking compiler")
	start := time.Now()
	err = compiler.New(d.Compiler).Run(ctx, inv)
	d.writeReport(inv, start, err)
	if err != nil {
		return err
	}
	d.logger.WithField("elapsed", time.Since(start)).Info("bindings generated")
	return nil
}

// writeReport persists the outcome of a compiler run if reporting is configured.
func (d *Driver) writeReport(inv compiler.Invocation, start time.Time, runErr error) {
	if d.ReportWriter == nil {
		return
	}
	r := report.RunReport{
		RunID:      uuid.NewString(),
		StartedAt:  start.UTC(),
		DurationMs: time.Since(start).Milliseconds(),
		Compiler:   inv.Path,
		Args:       inv.Args,
	}
	if runErr != nil {
		r.Error = runErr.Error()
		r.ExitCode = -1 // unknown unless the compiler itself failed
		var cerr *compiler.CompilationError
		if errors.As(runErr, &cerr) {
			r.ExitCode = cerr.ExitCode
		}
	}
	if err := d.ReportWriter.Write(r); err != nil {
		d.logger.WithError(err).Error("failed to write build report")
	}
}
