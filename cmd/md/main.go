// Package main is the entrypoint of md.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"md/internal/app"
	"md/internal/cfg"
	"md/internal/command/execute"
	"md/internal/domain/consts"
	"md/internal/domain/errs"
	"md/internal/utils/logging"
	"md/internal/utils/prompt"
)

// main is the program entrypoint.
func main() {
	os.Exit(run())
}

// run returns the process exit status.
func run() int {
	c, err := cfg.Parse(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, cfg.ErrNoRun) {
			return consts.ExitOK
		}
		logging.E("%v", err)
		return errs.ExitCode(err)
	}

	logging.Setup(c.Verbosity, c.Quiet)

	s, err := cfg.LoadSettings()
	if err != nil {
		logging.E("%v", err)
		return errs.ExitCode(err)
	}

	ctx, stop := notifyContext(os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, c, s, prompt.NewTerminal(os.Stdin, os.Stderr), execute.NewProcess(), os.Stderr)
	if err == nil {
		return consts.ExitOK
	}

	var subErr *errs.SubprocessError
	switch {
	case errors.As(err, &subErr) && subErr.Err == nil:
		logging.E("%v", err)
		logging.D(1, "%s printed its own diagnostics above", subErr.Tool)
	case errors.Is(err, context.Canceled):
		logging.W("Interrupted")
	default:
		logging.E("%v", err)
	}
	return errs.ExitCode(err)
}

// notifyContext is cancelled on the first of sigs, with the signal recorded as the cause so the
// executor knows whether the child already received it.
func notifyContext(sigs ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case sig := <-ch:
			cancel(&execute.SignalCause{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel(nil)
	}
}
