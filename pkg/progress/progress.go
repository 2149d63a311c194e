// Package progress draws single line progress bars:
//
//	\r{prefix} |████------| 40.0% {suffix}
//
// Each call redraws the whole line; the bar ends with a newline once
// current reaches total.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arthur-debert/termsay/pkg/style"
)

const (
	// DefaultWidth is the bar length used when the terminal size is unknown
	DefaultWidth = 100
	// MinWidth is the shortest bar FitWidth returns
	MinWidth = 10

	// " |", "| ", "100.0" and "% " around the bar
	decorationWidth = 11
	empty           = "-"
)

// Render returns the bar line for current out of total. A non-positive
// total counts as complete.
func Render(current, total int, prefix, suffix string, width int) string {
	if width < 0 {
		width = 0
	}

	ratio := 1.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}

	filled := int(math.Round(float64(width) * ratio))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(style.Block.Text(), filled) + strings.Repeat(empty, width-filled)
	line := fmt.Sprintf("\r%s |%s| %.1f%% %s", prefix, bar, 100*ratio, suffix)
	if current == total {
		line += "\n"
	}
	return line
}

// Write renders the bar to w
func Write(w io.Writer, current, total int, prefix, suffix string, width int) error {
	_, err := io.WriteString(w, Render(current, total, prefix, suffix, width))
	return err
}

type fileDescriptor interface {
	Fd() uintptr
}

// FitWidth returns the longest bar that fits on one line of the terminal
// behind w together with prefix and suffix. It returns DefaultWidth when w
// is not a terminal.
func FitWidth(w io.Writer, prefix, suffix string) int {
	f, ok := w.(fileDescriptor)
	if !ok {
		return DefaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return DefaultWidth
	}
	return WidthFor(cols, prefix, suffix)
}

// WidthFor is FitWidth for a known number of columns
func WidthFor(cols int, prefix, suffix string) int {
	width := cols - decorationWidth - runewidth.StringWidth(prefix) - runewidth.StringWidth(suffix)
	if width < MinWidth {
		return MinWidth
	}
	if width > DefaultWidth {
		return DefaultWidth
	}
	return width
}
