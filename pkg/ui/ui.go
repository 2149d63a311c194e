// Package ui prints leveled, colorized messages and asks questions on the
// terminal.
//
// A message is a loose list of values, styles and glyphs:
//
//	u := ui.New(config.Default())
//	u.Info("Deploying", style.Bold, "api", style.Reset, "to prod")
//	u.InfoCount(0, 3, "building")    // * (1/3) building
//	u.Error("connection refused")     // [ERROR]: connection refused
//
// Every call renders the message twice, with and without escape codes, and
// the sink writes whichever the stream can display. Package level functions
// use a shared default UI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/mattn/go-colorable"

	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/progress"
	"github.com/arthur-debert/termsay/pkg/render"
	"github.com/arthur-debert/termsay/pkg/sink"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
	"github.com/arthur-debert/termsay/pkg/ui/input"
)

// ExitCodeFatal is the process status Fatal exits with
const ExitCodeFatal = 1

// UI writes messages for one pair of output streams
type UI struct {
	cfg    *config.Config
	sink   *sink.Sink
	stdout io.Writer
	stderr io.Writer
	theme  style.Theme
	exit   func(int)
	now    func() time.Time
	policy ChoicePolicy

	sinkOpts []sink.Option

	readerMu sync.Mutex
	reader   input.LineReader
}

// Option configures a UI
type Option func(*UI)

// WithStdout sets the stream for info and debug messages
func WithStdout(w io.Writer) Option {
	return func(u *UI) { u.stdout = w }
}

// WithStderr sets the stream for errors and warnings
func WithStderr(w io.Writer) Option {
	return func(u *UI) { u.stderr = w }
}

// WithInput sets where prompt answers are read from
func WithInput(r input.LineReader) Option {
	return func(u *UI) { u.reader = r }
}

// WithExit replaces os.Exit for Fatal
func WithExit(fn func(int)) Option {
	return func(u *UI) { u.exit = fn }
}

// WithTheme sets the message prefixes
func WithTheme(t style.Theme) Option {
	return func(u *UI) { u.theme = t }
}

// WithClock sets the clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(u *UI) { u.now = now }
}

// WithChoicePolicy sets what AskChoice does with an empty answer
func WithChoicePolicy(p ChoicePolicy) Option {
	return func(u *UI) { u.policy = p }
}

// WithSink shares an existing sink, and its recorder, with this UI
func WithSink(s *sink.Sink) Option {
	return func(u *UI) { u.sink = s }
}

// WithSinkOptions configures the sink the UI creates
func WithSinkOptions(opts ...sink.Option) Option {
	return func(u *UI) { u.sinkOpts = append(u.sinkOpts, opts...) }
}

// New creates a UI reading its settings from cfg. A nil cfg uses
// config.Default().
func New(cfg *config.Config, opts ...Option) *UI {
	if cfg == nil {
		cfg = config.Default()
	}
	u := &UI{
		cfg:    cfg,
		stdout: colorable.NewColorableStdout(),
		stderr: colorable.NewColorableStderr(),
		theme:  style.DefaultTheme(),
		exit:   os.Exit,
		now:    time.Now,
		policy: EmptyPicksFirst,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.sink == nil {
		u.sink = sink.New(cfg, u.sinkOpts...)
	}
	return u
}

// Config returns the live configuration of the UI
func (u *UI) Config() *config.Config { return u.cfg }

// Sink returns the sink messages are written through
func (u *UI) Sink() *sink.Sink { return u.sink }

// Recorder returns the log of recorded plain messages
func (u *UI) Recorder() *sink.Recorder { return u.sink.Recorder() }

// Stdout returns the stream info messages go to
func (u *UI) Stdout() io.Writer { return u.stdout }

// Stderr returns the stream errors go to
func (u *UI) Stderr() io.Writer { return u.stderr }

// MessageOptions control a single Message call
type MessageOptions struct {
	Sep    string
	End    string
	Stream io.Writer // defaults to stdout
	Title  bool      // also set the terminal title
}

// DefaultMessageOptions writes space separated values followed by a newline
func DefaultMessageOptions() MessageOptions {
	return MessageOptions{Sep: " ", End: "\n"}
}

// Message renders args and writes them, regardless of quiet or verbose.
func (u *UI) Message(opts MessageOptions, args ...any) error {
	return u.emit(opts, token.From(args...))
}

func (u *UI) emit(opts MessageOptions, tokens []token.Token) error {
	settings := u.cfg.Settings()
	r := render.Render(tokens, render.Options{
		Sep:       opts.Sep,
		End:       opts.End,
		Timestamp: settings.Timestamp,
		Now:       u.now,
	})

	w := opts.Stream
	if w == nil {
		w = u.stdout
	}

	var emitOpts []sink.EmitOption
	if opts.Title {
		emitOpts = append(emitOpts, sink.WithTitle())
	}
	return u.sink.Emit(w, r, emitOpts...)
}

// Title sets the terminal window title to args, rendered without styles
func (u *UI) Title(args ...any) error {
	r := render.Render(token.From(args...), render.Options{Sep: " "})
	return u.sink.SetTitle(u.stdout, r)
}

// prefix turns a theme role into tokens: its styles, its text and a reset.
func (u *UI) prefix(role style.Role) []token.Token {
	p := u.theme.Prefix(role)
	out := make([]token.Token, 0, len(p.Styles)+2)
	for _, s := range p.Styles {
		out = append(out, token.S(s))
	}
	if p.Text != "" {
		out = append(out, token.V(p.Text))
	}
	return append(out, token.S(style.Reset))
}

func (u *UI) leveled(w io.Writer, role style.Role, args []any) error {
	tokens := append(u.prefix(role), token.From(args...)...)
	opts := DefaultMessageOptions()
	opts.Stream = w
	return u.emit(opts, tokens)
}

// Error writes an error message to stderr. Errors are never silenced.
func (u *UI) Error(args ...any) error {
	return u.leveled(u.stderr, style.RoleError, args)
}

// Warning writes a warning to stderr. Warnings are never silenced.
func (u *UI) Warning(args ...any) error {
	return u.leveled(u.stderr, style.RoleWarning, args)
}

// Info writes an informative message to stdout unless quiet is set. A quiet
// Info renders and records nothing.
func (u *UI) Info(args ...any) error {
	if u.cfg.Settings().Quiet {
		return nil
	}
	return u.Message(DefaultMessageOptions(), args...)
}

func (u *UI) infoTokens(tokens []token.Token) error {
	return u.infoWith(DefaultMessageOptions(), tokens)
}

func (u *UI) infoWith(opts MessageOptions, tokens []token.Token) error {
	if u.cfg.Settings().Quiet {
		return nil
	}
	return u.emit(opts, tokens)
}

// Debug writes to stdout only when verbose is set
func (u *UI) Debug(args ...any) error {
	if !u.cfg.Settings().Verbose {
		return nil
	}
	return u.leveled(u.stdout, style.RoleDebug, args)
}

// Info1 is Info with the primary marker
func (u *UI) Info1(args ...any) error {
	return u.infoTokens(append(u.prefix(style.RolePrimary), token.From(args...)...))
}

// Info2 is Info with the secondary marker
func (u *UI) Info2(args ...any) error {
	return u.infoTokens(append(u.prefix(style.RoleSecondary), token.From(args...)...))
}

// Info3 is Info with the tertiary marker
func (u *UI) Info3(args ...any) error {
	return u.infoTokens(append(u.prefix(style.RoleTertiary), token.From(args...)...))
}

// Counter formats the "(i/total)" counter for a zero based index. The index
// is right aligned to the number of digits of total.
func Counter(index, total int) string {
	width := len(strconv.Itoa(total))
	return fmt.Sprintf("(%*d/%d)", width, index+1, total)
}

// InfoCount is Info prefixed with a counter:
//
//	* (1/4) first
//	* ( 5/12) fifth
func (u *UI) InfoCount(index, total int, args ...any) error {
	p := u.theme.Prefix(style.RoleCounter)
	tokens := make([]token.Token, 0, len(p.Styles)+3+len(args))
	for _, s := range p.Styles {
		tokens = append(tokens, token.S(s))
	}
	if p.Text != "" {
		tokens = append(tokens, token.V(p.Text))
	}
	tokens = append(tokens, token.V(Counter(index, total)), token.S(style.Reset))
	return u.infoTokens(append(tokens, token.From(args...)...))
}

// Fatal writes an error message and exits with ExitCodeFatal
func (u *UI) Fatal(args ...any) {
	logger := logging.GetLogger("ui")
	if err := u.Error(args...); err != nil {
		logger.Error().Err(err).Msg("Failed to write fatal message")
	}
	logger.Debug().Int("status", ExitCodeFatal).Msg("Exiting after fatal message")
	u.exit(ExitCodeFatal)
}

// Progress redraws a progress bar sized to the terminal on stdout
func (u *UI) Progress(current, total int, prefix, suffix string) error {
	return u.ProgressWidth(current, total, prefix, suffix, progress.FitWidth(u.stdout, prefix, suffix))
}

// ProgressWidth redraws a progress bar of the given width on stdout. Quiet
// suppresses it like any other info output.
func (u *UI) ProgressWidth(current, total int, prefix, suffix string, width int) error {
	if u.cfg.Settings().Quiet {
		return nil
	}
	line := progress.Render(current, total, prefix, suffix, width)
	return u.sink.Emit(u.stdout, render.Rendering{Colored: line, Plain: line})
}
