package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Reader reads operator input line by line. Prompts are only echoed when the
// input is an interactive terminal.
type Reader struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewReader wraps in. The reader is created once so buffered data isn't lost
// between prompts.
func NewReader(in io.Reader, out io.Writer) *Reader {
	if out == nil {
		out = os.Stdout
	}

	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	return &Reader{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Interactive reports whether prompts are echoed
func (r *Reader) Interactive() bool {
	return r.interactive
}

// Prompt blocks until one line is read. End of input counts as an empty line.
func (r *Reader) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.interactive && prompt != "" {
		_, _ = fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// AutoInput acknowledges every prompt immediately. Used for headless runs.
type AutoInput struct{}

// Prompt returns an empty line without blocking
func (AutoInput) Prompt(ctx context.Context, _ string) (string, error) {
	return "", ctx.Err()
}

// ScriptedInput replays canned lines, then empty lines once they run out.
// It records every prompt it was shown.
type ScriptedInput struct {
	mu      sync.Mutex
	lines   []string
	prompts []string
}

// NewScriptedInput creates a scripted input provider
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// Prompt returns the next scripted line
func (s *ScriptedInput) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Prompts returns the prompts shown so far
func (s *ScriptedInput) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}
