package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	retry "github.com/sethvargo/go-retry"

	"github.com/jtcooper10/proto-build/internal/log"
)

// Runner executes assembled invocations, streaming the child's output
// through to the operator.
type Runner struct {
	opts   CmdOpts
	stdout io.Writer
	stderr io.Writer
}

// New returns a Runner wired to the process stdio.
func New(opts CmdOpts) *Runner {
	if opts.Retries < 0 { // negative values wrap around in WithMaxRetries
		opts.Retries = 0
	}
	if opts.RetryDelay <= 0 { // constant backoff must be positive
		opts.RetryDelay = time.Second
	}
	return &Runner{
		opts:   opts,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes the invocation. Failed compilations are retried per the
// options; a compiler exiting non-zero surfaces as *CompilationError.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}
	logger := log.GetLogger(ctx)
	backoff := retry.WithMaxRetries(uint64(r.opts.Retries), retry.NewConstant(r.opts.RetryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := r.runOnce(ctx, inv)
		var cerr *CompilationError
		if errors.As(err, &cerr) {
			logger.WithField("exitcode", cerr.ExitCode).Error("compilation failed")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (r *Runner) runOnce(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	var errBuf bytes.Buffer
	cmd.Stdout = r.stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &errBuf)
	// a killed compiler may leave plugin children holding the pipes open
	cmd.WaitDelay = 5 * time.Second
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CompilationError{ExitCode: exitErr.ExitCode(), Output: errBuf.String()}
	}
	return fmt.Errorf("could not run compiler %s: %w", inv.Path, err)
}
