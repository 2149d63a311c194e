// Package logging holds termsay's own diagnostics. It is unrelated to the
// user-facing messages produced by pkg/ui.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	mu sync.RWMutex
	// root stays silent until SetupLogger is called, so embedding
	// applications never see termsay diagnostics unless they ask for them.
	root = zerolog.Nop()
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	logger, logFile, err := newLogger(verbosity, os.Stderr)

	mu.Lock()
	root = logger
	mu.Unlock()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		logger.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	logger.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// SetOutput routes diagnostics to w without a log file. Tests use it to
// capture what the library logs.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	root = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Reset silences diagnostics again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = zerolog.Nop()
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}

func newLogger(verbosity int, console io.Writer) (zerolog.Logger, string, error) {
	level := levelFor(verbosity)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}

	logFile, err := getLogFilePath()
	if err == nil {
		var handle *os.File
		handle, err = setupLogFile(logFile)
		if err == nil {
			writers = append(writers, handle)
		}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	return logger, logFile, err
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// getLogFilePath returns the path to the log file under XDG_STATE_HOME,
// creating parent directories as needed.
func getLogFilePath() (string, error) {
	path, err := xdg.StateFile("termsay/termsay.log")
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file path: %w", err)
	}
	return path, nil
}

// setupLogFile opens the log file in append mode
func setupLogFile(logPath string) (*os.File, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
