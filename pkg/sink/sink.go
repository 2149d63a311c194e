// Package sink writes rendered messages to their stream. It decides
// between the colored and the plain rendering, records plain text for
// tests, and falls back to ASCII when a stream rejects a message.
package sink

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/render"
	"github.com/arthur-debert/termsay/pkg/translit"
)

// Sink emits renderings. A single Sink serializes its writes, so messages
// from concurrent goroutines never interleave.
type Sink struct {
	cfg        *config.Config
	recorder   *Recorder
	pause      time.Duration
	goos       string
	isTerminal func(io.Writer) bool

	mu sync.Mutex
}

// Option configures a Sink
type Option func(*Sink)

// WithRecorder records into r instead of a private recorder
func WithRecorder(r *Recorder) Option {
	return func(s *Sink) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithPause sleeps for d after every emitted message
func WithPause(d time.Duration) Option {
	return func(s *Sink) {
		s.pause = d
	}
}

// WithTerminalDetector replaces the terminal test used in auto color mode
func WithTerminalDetector(fn func(io.Writer) bool) Option {
	return func(s *Sink) {
		if fn != nil {
			s.isTerminal = fn
		}
	}
}

// WithPlatform overrides the operating system name used for the color and
// title decisions
func WithPlatform(goos string) Option {
	return func(s *Sink) {
		s.goos = goos
	}
}

// New creates a sink reading its settings from cfg on every emit
func New(cfg *config.Config, opts ...Option) *Sink {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Sink{
		cfg:        cfg,
		recorder:   NewRecorder(),
		goos:       defaultPlatform(),
		isTerminal: IsTerminal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the sink reads
func (s *Sink) Config() *config.Config { return s.cfg }

// Recorder returns the recorded message log
func (s *Sink) Recorder() *Recorder { return s.recorder }

type emitOptions struct {
	title bool
}

// EmitOption configures one Emit call
type EmitOption func(*emitOptions)

// WithTitle also sets the terminal window title to the message text
func WithTitle() EmitOption {
	return func(o *emitOptions) {
		o.title = true
	}
}

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Emit writes one rendering to w. Encoding failures are retried once with
// the message transliterated to ASCII; any other failure, or a second
// encoding failure, is returned as ErrIO.
func (s *Sink) Emit(w io.Writer, r render.Rendering, opts ...EmitOption) error {
	var eo emitOptions
	for _, opt := range opts {
		opt(&eo)
	}

	settings := s.cfg.Settings()
	colored := s.Colored(w, settings.Color)

	text := r.Plain
	if colored {
		text = r.Colored
	}

	if settings.Record {
		s.recorder.Append(r.Plain)
	}

	s.mu.Lock()
	err := s.write(w, text, settings.Charset)
	if err == nil && eo.title && colored && s.titleSupported() {
		err = s.write(w, titleSequence(r.Plain), settings.Charset)
	}
	if err == nil {
		err = flush(w)
	}
	s.mu.Unlock()

	if s.pause > 0 {
		time.Sleep(s.pause)
	}
	return err
}

// SetTitle sets the terminal window title of w to the plain text of r. It
// does nothing on streams that would get the plain rendering or on
// terminals known to print the sequence instead.
func (s *Sink) SetTitle(w io.Writer, r render.Rendering) error {
	settings := s.cfg.Settings()
	if !s.Colored(w, settings.Color) || !s.titleSupported() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(w, titleSequence(r.Plain), settings.Charset); err != nil {
		return err
	}
	return flush(w)
}

func (s *Sink) write(w io.Writer, text, charset string) error {
	err := writeEncoded(w, text, charset)
	if err == nil {
		return nil
	}
	if !errors.IsErrorCode(err, errors.ErrEncoding) {
		return errors.Wrap(err, errors.ErrIO, "write failed")
	}

	logger := logging.GetLogger("sink")
	logger.Debug().Err(err).Str("charset", charset).Msg("Stream rejected message, retrying as ASCII")
	if err := writeEncoded(w, translit.ASCII(text), charset); err != nil {
		return errors.Wrap(err, errors.ErrIO, "write failed after ASCII fallback")
	}
	return nil
}

func writeEncoded(w io.Writer, text, charset string) error {
	payload, err := encode(text, charset)
	if err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

func titleSequence(plain string) string {
	title := strings.TrimRight(plain, "\r\n")
	return termenv.OSC + "0;" + title + string(termenv.BEL)
}

// flush pushes buffered output. Sync errors are ignored: terminals and
// pipes reject fsync.
func flush(w io.Writer) error {
	switch f := w.(type) {
	case flusher:
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, errors.ErrIO, "flush failed")
		}
	case syncer:
		_ = f.Sync()
	}
	return nil
}
