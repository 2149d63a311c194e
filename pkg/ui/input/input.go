// Package input reads answers to prompts, one line at a time. Terminals get
// line editing through liner; pipes and files are read with bufio.
package input

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/arthur-debert/termsay/pkg/errors"
)

// ErrInterrupted is returned when the user cancels a prompt with Ctrl-C or
// closes the input
var ErrInterrupted = errors.New(errors.ErrInterrupted, "input interrupted")

// LineReader reads one line of user input after showing prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// StreamReader reads lines from any reader. End of input counts as an
// interruption.
type StreamReader struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewStreamReader reads from in and echoes prompts to out. A nil out
// discards prompts.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	if out == nil {
		out = io.Discard
	}
	return &StreamReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements LineReader
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", errors.Wrap(err, errors.ErrIO, "cannot write prompt")
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", errors.Wrap(err, errors.ErrIO, "cannot read input")
		}
		if line == "" {
			return "", ErrInterrupted
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TerminalReader reads lines with history and line editing
type TerminalReader struct {
	state *liner.State
}

// NewTerminalReader takes over the process terminal. Call Close to restore
// it.
func NewTerminalReader() *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &TerminalReader{state: state}
}

// ReadLine implements LineReader
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted || stderrors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", errors.Wrap(err, errors.ErrIO, "cannot read input")
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal
func (r *TerminalReader) Close() error {
	return r.state.Close()
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New picks a TerminalReader when both stdin and stdout are terminals that
// liner can drive, and a StreamReader over stdin otherwise.
func New() LineReader {
	if IsTerminal(os.Stdin) && IsTerminal(os.Stdout) && liner.TerminalSupported() {
		return &lazyTerminal{}
	}
	return NewStreamReader(os.Stdin, os.Stdout)
}

// lazyTerminal only switches the terminal to raw mode while a prompt is
// active, so regular output between prompts is not affected. Answers are
// kept so every prompt can recall the earlier ones.
type lazyTerminal struct {
	mu      sync.Mutex
	history history
}

func (l *lazyTerminal) ReadLine(prompt string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := NewTerminalReader()
	defer func() { _ = r.Close() }()
	l.history.load(r.state)

	line, err := r.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	l.history.add(line)
	return line, nil
}

// history is the answer list replayed into each new liner state
type history struct {
	lines []string
}

func (h *history) add(line string) {
	if strings.TrimSpace(line) != "" {
		h.lines = append(h.lines, line)
	}
}

func (h *history) load(state *liner.State) {
	for _, line := range h.lines {
		state.AppendHistory(line)
	}
}
