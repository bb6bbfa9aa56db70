// Package execute runs external tools with the terminal attached.
package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"md/internal/domain/consts"
	"md/internal/domain/errconsts"
	"md/internal/domain/errs"
	"md/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// Runner runs a tool to completion. A failed run returns a *errs.SubprocessError.
type Runner interface {
	Run(ctx context.Context, tool string, args []string) error
}

// SignalCause is the cancellation cause recorded when md itself receives a signal.
type SignalCause struct {
	Signal os.Signal
}

func (c *SignalCause) Error() string { return "received " + c.Signal.String() }

// Process runs tools as child processes sharing md's standard streams.
type Process struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Grace is how long the child has to exit after an interrupt before it is killed.
	Grace time.Duration
}

// NewProcess returns a Process attached to os.Stdin, os.Stdout and os.Stderr.
func NewProcess() *Process {
	return &Process{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Grace:  consts.InterruptGrace,
	}
}

// Run starts tool and waits for it.
//
// When ctx ends the child is sent an interrupt, then killed once the grace period passes. A
// terminal interrupt already reached the child through the shared process group, so it is not
// sent twice.
func (p *Process) Run(ctx context.Context, tool string, args []string) error {
	path, err := exec.LookPath(tool)
	if err != nil {
		return &errs.SubprocessError{Tool: tool, Code: consts.ExitNotFound, Err: fmt.Errorf(errconsts.YTDLPNotFound, tool, err)}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	cmd.Cancel = func() error {
		var sc *SignalCause
		if errors.As(context.Cause(ctx), &sc) && sc.Signal == os.Interrupt {
			logging.D(1, "%s (PID %d) shares the interrupt, waiting up to %v", tool, cmd.Process.Pid, p.Grace)
			return nil
		}
		logging.D(1, "Forwarding interrupt to %s (PID %d)", tool, cmd.Process.Pid)
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = p.Grace

	logging.I("Executing command: %s", shellescape.QuoteCommand(append([]string{tool}, args...)))
	logging.D(1, " -> executing: %s", cmd.String())

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = consts.ExitInterrupted
		}
		return &errs.SubprocessError{Tool: tool, Code: code}
	case ctx.Err() != nil:
		return &errs.SubprocessError{Tool: tool, Code: consts.ExitInterrupted, Err: ctx.Err()}
	default:
		return &errs.SubprocessError{Tool: tool, Code: consts.ExitFailure, Err: fmt.Errorf(errconsts.YTDLPFailure, err)}
	}
}
