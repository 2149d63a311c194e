package sink

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/termsay/pkg/config"
)

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal, Cygwin and MSYS
// ptys included. Writers without a file descriptor are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colored reports whether w gets the colored rendering under mode.
func (s *Sink) Colored(w io.Writer, mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	// Windows terminal emulators such as mintty misreport themselves, and
	// go-colorable translates escape codes for the classic console anyway.
	if s.goos == "windows" {
		return true
	}
	return s.isTerminal(w)
}

// titleSupported reports whether the window title escape is safe to write
func (s *Sink) titleSupported() bool {
	switch os.Getenv("TERM") {
	case "dumb", "linux":
		return false
	}
	if s.goos == "windows" && os.Getenv("WT_SESSION") == "" {
		return false
	}
	return true
}

func defaultPlatform() string {
	return runtime.GOOS
}
