package sink_test

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/render"
	"github.com/arthur-debert/termsay/pkg/sink"
	"github.com/arthur-debert/termsay/pkg/style"
)

func notTerminal(io.Writer) bool { return false }
func terminal(io.Writer) bool    { return true }

func newSink(t *testing.T, s config.Settings, opts ...sink.Option) *sink.Sink {
	t.Helper()
	opts = append([]sink.Option{sink.WithPlatform("linux"), sink.WithTerminalDetector(notTerminal)}, opts...)
	return sink.New(config.New(s), opts...)
}

func redMessage() render.Rendering {
	return render.Tokens(render.DefaultOptions(), style.Red, "hello")
}

func TestEmitColorDecision(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")

	tests := []struct {
		name     string
		mode     config.ColorMode
		platform string
		detector func(io.Writer) bool
		colored  bool
	}{
		{"always on a pipe", config.ColorAlways, "linux", notTerminal, true},
		{"never on a terminal", config.ColorNever, "linux", terminal, false},
		{"auto on a terminal", config.ColorAuto, "linux", terminal, true},
		{"auto on a pipe", config.ColorAuto, "linux", notTerminal, false},
		{"auto on windows pipe", config.ColorAuto, "windows", notTerminal, true},
		{"never on windows", config.ColorNever, "windows", terminal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Color = tt.mode
			s := sink.New(config.New(settings),
				sink.WithPlatform(tt.platform),
				sink.WithTerminalDetector(tt.detector))

			var buf bytes.Buffer
			msg := redMessage()
			require.NoError(t, s.Emit(&buf, msg))

			if tt.colored {
				assert.Equal(t, msg.Colored, buf.String())
			} else {
				assert.Equal(t, msg.Plain, buf.String())
			}
		})
	}
}

func TestEmitNoColorEnvironment(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	settings := config.DefaultSettings()
	s := newSink(t, settings, sink.WithTerminalDetector(terminal))

	var buf bytes.Buffer
	require.NoError(t, s.Emit(&buf, redMessage()))
	assert.Equal(t, "hello\n", buf.String())

	settings.Color = config.ColorAlways
	s.Config().Replace(settings)
	buf.Reset()
	require.NoError(t, s.Emit(&buf, redMessage()))
	assert.Contains(t, buf.String(), style.Red.Code())
}

func TestEmitRecordsPlainText(t *testing.T) {
	for _, mode := range []config.ColorMode{config.ColorAlways, config.ColorNever, config.ColorAuto} {
		t.Run(mode.String(), func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Color = mode
			settings.Record = true
			s := newSink(t, settings)

			var buf bytes.Buffer
			require.NoError(t, s.Emit(&buf, redMessage()))

			assert.Equal(t, []string{"hello\n"}, s.Recorder().Messages())
		})
	}
}

func TestEmitWithoutRecord(t *testing.T) {
	s := newSink(t, config.DefaultSettings())

	var buf bytes.Buffer
	require.NoError(t, s.Emit(&buf, redMessage()))
	assert.Equal(t, 0, s.Recorder().Len())
}

func TestEmitSharedRecorder(t *testing.T) {
	rec := sink.NewRecorder()
	settings := config.DefaultSettings()
	settings.Record = true
	s := newSink(t, settings, sink.WithRecorder(rec))

	require.NoError(t, s.Emit(io.Discard, redMessage()))
	assert.Same(t, rec, s.Recorder())
	assert.Equal(t, 1, rec.Len())
}

func TestEmitTitle(t *testing.T) {
	msg := render.Tokens(render.DefaultOptions(), "building", "docs")
	title := "\x1b]0;building docs\a"

	tests := []struct {
		name      string
		mode      config.ColorMode
		platform  string
		term      string
		wtSession string
		wantTitle bool
	}{
		{"colored xterm", config.ColorAlways, "linux", "xterm-256color", "", true},
		{"plain output", config.ColorNever, "linux", "xterm-256color", "", false},
		{"dumb terminal", config.ColorAlways, "linux", "dumb", "", false},
		{"linux console", config.ColorAlways, "linux", "linux", "", false},
		{"windows console", config.ColorAlways, "windows", "", "", false},
		{"windows terminal", config.ColorAlways, "windows", "", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			t.Setenv("WT_SESSION", tt.wtSession)

			settings := config.DefaultSettings()
			settings.Color = tt.mode
			s := sink.New(config.New(settings), sink.WithPlatform(tt.platform))

			var buf bytes.Buffer
			require.NoError(t, s.Emit(&buf, msg, sink.WithTitle()))

			if tt.wantTitle {
				assert.Equal(t, msg.Colored+title, buf.String())
			} else {
				assert.NotContains(t, buf.String(), "\x1b]0;")
			}
		})
	}
}

func TestSetTitle(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	msg := render.Tokens(render.Options{Sep: " "}, style.Bold, "deploying")

	settings := config.DefaultSettings()
	settings.Color = config.ColorAlways
	s := newSink(t, settings)

	var buf bytes.Buffer
	require.NoError(t, s.SetTitle(&buf, msg))
	assert.Equal(t, "\x1b]0;deploying\a", buf.String())

	s.Config().SetColor(config.ColorNever)
	buf.Reset()
	require.NoError(t, s.SetTitle(&buf, msg))
	assert.Empty(t, buf.String())
}

func TestEmitCharsetFallback(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Charset = "ISO-8859-1"
	s := newSink(t, settings)

	t.Run("representable runes are encoded", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Emit(&buf, render.Tokens(render.DefaultOptions(), "café")))
		assert.Equal(t, []byte("caf\xe9\n"), buf.Bytes())
	})

	t.Run("unrepresentable runes fall back to ASCII", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Emit(&buf, render.Tokens(render.DefaultOptions(), "café", "✓")))
		assert.Equal(t, "cafe ok\n", buf.String())
	})
}

func TestEmitUnknownCharset(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Charset = "no-such-charset"
	s := newSink(t, settings)

	var buf bytes.Buffer
	require.NoError(t, s.Emit(&buf, render.Tokens(render.DefaultOptions(), "déjà", "vu")))
	assert.Equal(t, "deja vu\n", buf.String())
}

// asciiOnlyWriter rejects anything outside ASCII the way a legacy console
// would, and counts the attempts.
type asciiOnlyWriter struct {
	bytes.Buffer
	attempts int
	always   bool
}

func (w *asciiOnlyWriter) Write(p []byte) (int, error) {
	w.attempts++
	if w.always {
		return 0, errors.New(errors.ErrEncoding, "stream rejects everything")
	}
	for _, b := range p {
		if b > 0x7f {
			return 0, errors.New(errors.ErrEncoding, "stream is ascii only")
		}
	}
	return w.Buffer.Write(p)
}

func TestEmitStreamEncodingRejection(t *testing.T) {
	s := newSink(t, config.DefaultSettings())

	w := &asciiOnlyWriter{}
	require.NoError(t, s.Emit(w, render.Tokens(render.DefaultOptions(), "done", "✓")))

	assert.Equal(t, 2, w.attempts)
	assert.Equal(t, "done ok\n", w.String())
}

func TestEmitSecondFailureIsIOError(t *testing.T) {
	s := newSink(t, config.DefaultSettings())

	w := &asciiOnlyWriter{always: true}
	err := s.Emit(w, render.Tokens(render.DefaultOptions(), "x"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Equal(t, 2, w.attempts)
}

type brokenWriter struct{ writes int }

func (w *brokenWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, stderrors.New("broken pipe")
}

func TestEmitPlainWriteErrorNotRetried(t *testing.T) {
	s := newSink(t, config.DefaultSettings())

	w := &brokenWriter{}
	err := s.Emit(w, render.Tokens(render.DefaultOptions(), "x"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrIO, errors.GetErrorCode(err))
	assert.Equal(t, 1, w.writes)
}

type flushWriter struct {
	bytes.Buffer
	flushed int
}

func (w *flushWriter) Flush() error {
	w.flushed++
	return nil
}

func TestEmitFlushes(t *testing.T) {
	s := newSink(t, config.DefaultSettings())

	w := &flushWriter{}
	require.NoError(t, s.Emit(w, redMessage()))
	require.NoError(t, s.Emit(w, redMessage()))
	assert.Equal(t, 2, w.flushed)
}

func TestEmitPause(t *testing.T) {
	s := newSink(t, config.DefaultSettings(), sink.WithPause(20*time.Millisecond))

	start := time.Now()
	require.NoError(t, s.Emit(io.Discard, redMessage()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestEmitConcurrentWritesDoNotInterleave(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Record = true
	s := newSink(t, settings)

	var buf bytes.Buffer
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Emit(&buf, render.Tokens(render.DefaultOptions(), strings.Repeat("x", 64)))
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("x", 64), line)
	}
	assert.Equal(t, 20, s.Recorder().Len())
}
