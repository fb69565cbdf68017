package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathprobe/logging"
	"github.com/katalvlaran/pathprobe/traverse"
)

// Messages written to the error stream. Both leave the loop running.
const (
	msgOutOfRange    = "vertices out of range"
	msgNotUnderstood = "command not understood"
)

// DefaultPrompt is printed before every line read.
const DefaultPrompt = "> "

// Shell is the interactive command loop.
type Shell struct {
	runner *Runner
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt string
	logger *slog.Logger
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithPrompt replaces DefaultPrompt.
func WithPrompt(p string) ShellOption {
	return func(s *Shell) {
		s.prompt = p
	}
}

// WithErrorOutput sends diagnostics to w instead of the main output.
func WithErrorOutput(w io.Writer) ShellOption {
	return func(s *Shell) {
		s.errOut = w
	}
}

// WithShellLogger sets the logger for rejected lines.
func WithShellLogger(l *slog.Logger) ShellOption {
	return func(s *Shell) {
		s.logger = l
	}
}

// NewShell reads commands from in and writes results to out.
func NewShell(r *Runner, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		runner: r,
		in:     in,
		out:    out,
		errOut: out,
		prompt: DefaultPrompt,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loops until EOF, an exit command, or ctx is done. Bad lines are
// reported and skipped; only I/O failures and cancellation end the loop
// with an error.
func (s *Shell) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return err
		}
		if !sc.Scan() {
			return sc.Err()
		}

		stop, err := s.handle(ctx, sc.Text())
		if err != nil || stop {
			return err
		}
	}
}

// handle executes one line and reports whether the loop should stop.
func (s *Shell) handle(ctx context.Context, line string) (bool, error) {
	// Grammar is checked before range, so "foo 9 9" is not understood.
	cmd, err := ParseCommand(line)
	if err != nil {
		s.logger.Debug("command rejected", slog.String("line", line), slog.String("error", err.Error()))
		return false, s.diag(msgNotUnderstood)
	}

	switch cmd.Kind {
	case KindEmpty:
		return false, nil
	case KindExit:
		return true, nil
	case KindHelp:
		_, err = io.WriteString(s.out, helpText)
		return false, err
	case KindCompare:
		results, err := s.runner.Compare(ctx, cmd.Query.Source, cmd.Query.Destination)
		if err != nil {
			return false, s.report(err)
		}
		return false, WriteComparison(s.out, results)
	default:
		res, err := s.runner.Run(ctx, cmd.Query)
		if res != nil {
			return false, WriteResult(s.out, res)
		}
		return false, s.report(err)
	}
}

// report turns a Runner error into a diagnostic line.
func (s *Shell) report(err error) error {
	if errors.Is(err, traverse.ErrVertexOutOfRange) {
		return s.diag(msgOutOfRange)
	}

	return s.diag(err.Error())
}

func (s *Shell) diag(msg string) error {
	_, err := fmt.Fprintln(s.errOut, msg)
	return err
}
