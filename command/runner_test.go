package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/pick/errors"
)

func TestRunnerDefaults(t *testing.T) {
	r := NewRunner()
	if r.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", r.Timeout(), DefaultTimeout)
	}

	t.Run("timeout capped at max", func(t *testing.T) {
		r := NewRunner().WithTimeout(time.Hour)
		if r.Timeout() != MaxTimeout {
			t.Errorf("Timeout() = %v, want %v", r.Timeout(), MaxTimeout)
		}
	})

	t.Run("zero timeout keeps default", func(t *testing.T) {
		r := NewRunner().WithTimeout(0)
		if r.Timeout() != DefaultTimeout {
			t.Errorf("Timeout() = %v, want %v", r.Timeout(), DefaultTimeout)
		}
	})
}

func TestRunnerRun(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		var out bytes.Buffer
		r := NewRunner()
		r.Stdout = &out

		if err := r.Run(context.Background(), "echo hello"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got := out.String(); !strings.Contains(got, "hello") {
			t.Errorf("stdout = %q, want to contain %q", got, "hello")
		}
	})

	t.Run("captures stderr", func(t *testing.T) {
		var out, errOut bytes.Buffer
		r := NewRunner()
		r.Stdout = &out
		r.Stderr = &errOut

		if err := r.Run(context.Background(), "echo oops >&2"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got := errOut.String(); !strings.Contains(got, "oops") {
			t.Errorf("stderr = %q, want to contain %q", got, "oops")
		}
	})

	t.Run("reports exit code", func(t *testing.T) {
		r := NewRunner()
		r.Stdout = &bytes.Buffer{}
		r.Stderr = &bytes.Buffer{}

		err := r.Run(context.Background(), "exit 3")
		if err == nil {
			t.Fatal("Run() error = nil, want failure")
		}
		if code := errors.GetCode(err); code != errors.ErrCodeCommandFailed {
			t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeCommandFailed)
		}
		var pickErr *errors.PickError
		if !stderrors.As(err, &pickErr) {
			t.Fatalf("error %T is not a *errors.PickError", err)
		}
		if got := pickErr.Details["exitCode"]; got != 3 {
			t.Errorf("Details[exitCode] = %v, want 3", got)
		}
	})

	t.Run("times out", func(t *testing.T) {
		r := NewRunner().WithTimeout(50 * time.Millisecond)
		r.Stdout = &bytes.Buffer{}
		r.Stderr = &bytes.Buffer{}

		err := r.Run(context.Background(), "sleep 1")
		if err == nil {
			t.Fatal("Run() error = nil, want timeout")
		}
		if code := errors.GetCode(err); code != errors.ErrCodeCommandTimeout {
			t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeCommandTimeout)
		}
	})

	t.Run("rejects empty command", func(t *testing.T) {
		r := NewRunner()
		for _, command := range []string{"", "   "} {
			err := r.Run(context.Background(), command)
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
				t.Errorf("Run(%q) code = %v, want %v", command, code, errors.ErrCodeInvalidInput)
			}
		}
	})
}

// recordingExecutor captures the command handed to it and substitutes a no-op.
type recordingExecutor struct {
	name string
	args []string
}

func (e *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.name = name
	e.args = args
	return exec.CommandContext(ctx, "true")
}

func TestRunnerUsesShell(t *testing.T) {
	rec := &recordingExecutor{}
	r := NewRunnerWithExecutor(rec)

	if err := r.Run(context.Background(), "git status"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rec.name != "sh" {
		t.Errorf("executor name = %q, want %q", rec.name, "sh")
	}
	if len(rec.args) != 2 || rec.args[0] != "-c" || rec.args[1] != "git status" {
		t.Errorf("executor args = %v, want [-c, git status]", rec.args)
	}
}
