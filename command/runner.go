// Package command executes the run strings that declarative menu
// definitions attach to options.
package command

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/logging"
)

var log = logging.NewLogger("command")

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 2 * time.Minute

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

// Runner executes option commands through the shell with a timeout cap.
// Stdout, Stderr and Stdin default to the process streams so commands share
// the terminal the menu runs on.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	timeout  time.Duration
	executor Executor
}

// NewRunner creates a Runner backed by a RealExecutor.
func NewRunner() *Runner {
	return NewRunnerWithExecutor(&RealExecutor{})
}

// NewRunnerWithExecutor creates a Runner with a custom Executor.
func NewRunnerWithExecutor(exec Executor) *Runner {
	return &Runner{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		timeout:  DefaultTimeout,
		executor: exec,
	}
}

// WithTimeout sets a custom timeout, capped at MaxTimeout.
func (r *Runner) WithTimeout(timeout time.Duration) *Runner {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	if timeout > 0 {
		r.timeout = timeout
	}
	return r
}

// Timeout returns the effective timeout.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Run executes command through `sh -c` and blocks until it finishes. The
// command inherits the runner's streams. A deadline hit maps to
// COMMAND_TIMEOUT, any other failure to COMMAND_FAILED with the exit code
// attached.
func (r *Runner) Run(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "command is empty")
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := r.executor.CommandContext(runCtx, "sh", "-c", command)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin

	log.WithField("command", command).Debug("Running option command")
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if runCtx.Err() == context.DeadlineExceeded {
		return errors.CommandTimeout(command, r.timeout.String())
	}
	return errors.CommandFailed(command, err)
}
