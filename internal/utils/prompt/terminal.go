package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"md/internal/domain/consts"
	"md/internal/domain/errconsts"
	"md/internal/domain/errs"

	"github.com/mattn/go-isatty"
)

type line struct {
	text string
	err  error
}

// Terminal prompts on a line-oriented input stream.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	once    sync.Once
	reqs    chan struct{}
	lines   chan line
	pending bool
	ended   error
}

// NewTerminal returns a prompter reading from in. Prompts fail with an InputError unless in
// is a terminal.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	fd := in.Fd()
	return New(in, out, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// New returns a prompter reading from an arbitrary reader.
func New(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          in,
		out:         out,
		interactive: interactive,
		reqs:        make(chan struct{}),
		lines:       make(chan line),
	}
}

// Choose prints a numbered menu and reads a selection.
func (t *Terminal) Choose(ctx context.Context, msg string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to choose from for %q", msg)
	}
	if def < 0 || def >= len(options) {
		def = 0
	}

	for {
		fmt.Fprintf(t.out, "%s%s\n", consts.PromptMark, msg)
		for i, opt := range options {
			marker := "  "
			if i == def {
				marker = consts.PromptCursor
			}
			fmt.Fprintf(t.out, "%s%d) %s\n", marker, i+1, opt)
		}
		fmt.Fprintf(t.out, "[%d]: ", def+1)

		answer, err := t.readLine(ctx, msg)
		if err != nil {
			return 0, err
		}
		idx, err := parseChoice(answer, options, def)
		if err == nil {
			return idx, nil
		}
		fmt.Fprintf(t.out, "%s%v\n", consts.InvalidMark, err)
	}
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, msg string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(t.out, "%s%s (%s) ", consts.PromptMark, msg, hint)

		answer, err := t.readLine(ctx, msg)
		if err != nil {
			return false, err
		}
		ok, err := parseConfirm(answer, def)
		if err == nil {
			return ok, nil
		}
		fmt.Fprintf(t.out, "%s%v\n", consts.InvalidMark, err)
	}
}

// Text asks for free text.
func (t *Terminal) Text(ctx context.Context, msg, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s%s %s[%s]%s ", consts.PromptMark, msg, consts.ColorDim, def, consts.ColorReset)
	} else {
		fmt.Fprintf(t.out, "%s%s ", consts.PromptMark, msg)
	}

	answer, err := t.readLine(ctx, msg)
	if err != nil {
		return "", err
	}
	return parseText(answer, def), nil
}

// readLine asks the reader for the next input line and waits for it or for ctx to end. A read
// abandoned on cancellation is picked up by the next call.
func (t *Terminal) readLine(ctx context.Context, msg string) (string, error) {
	if !t.interactive {
		return "", &errs.InputError{Prompt: msg, Err: fmt.Errorf(errconsts.NotInteractive, msg)}
	}
	if t.ended != nil {
		return "", t.inputErr(msg, t.ended)
	}

	t.once.Do(func() {
		go t.scan()
	})
	if !t.pending {
		t.reqs <- struct{}{}
		t.pending = true
	}

	select {
	case l := <-t.lines:
		t.pending = false
		if l.err != nil {
			t.ended = l.err
			return "", t.inputErr(msg, l.err)
		}
		return l.text, nil

	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", fmt.Errorf("prompt %q: %w", msg, ctx.Err())
	}
}

func (t *Terminal) inputErr(msg string, err error) error {
	if errors.Is(err, io.EOF) {
		return &errs.InputError{Prompt: msg, Err: fmt.Errorf(errconsts.InputClosed, msg)}
	}
	return &errs.InputError{Prompt: msg, Err: err}
}

// scan reads one line per request, so input past the last answer stays unread for the child
// that inherits it. It stops at the first read error.
func (t *Terminal) scan() {
	for range t.reqs {
		text, err := readRawLine(t.in)
		t.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// readRawLine reads up to and including the next newline a byte at a time. A final line
// without a newline is returned without error; the following call reports io.EOF.
func readRawLine(r io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return strings.TrimRight(b.String(), "\r"), nil
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return strings.TrimRight(b.String(), "\r"), nil
			}
			return "", err
		}
	}
}
