package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/style"
)

// Tabs returns n levels of two space indentation
func Tabs(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("  ", n)
}

func indenter(n int) lipgloss.Style {
	if n < 0 {
		n = 0
	}
	return lipgloss.NewStyle().PaddingLeft(n).TabWidth(lipgloss.NoTabConversion)
}

// IndentLines prefixes every line with n spaces
func IndentLines(lines []string, n int) []string {
	pad := indenter(n)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = pad.Render(line)
	}
	return out
}

// Indent prefixes every line of text with n spaces. Line endings are
// normalized to "\n" and a trailing newline is dropped.
func Indent(text string, n int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return ""
	}
	return strings.Join(IndentLines(strings.Split(text, "\n"), n), "\n")
}

// DidYouMean appends the closest of choices to msg:
//
//	unknown command "stauts"
//	Did you mean: status?
//
// msg is returned unchanged when there are no choices.
func DidYouMean(msg, input string, choices []string) string {
	if len(choices) == 0 {
		return msg
	}
	best := choices[0]
	bestDistance := fuzzy.LevenshteinDistance(input, best)
	for _, choice := range choices[1:] {
		if d := fuzzy.LevenshteinDistance(input, choice); d < bestDistance {
			best, bestDistance = choice, d
		}
	}
	return fmt.Sprintf("%s\nDid you mean: %s?", msg, best)
}

// MessageForError builds the arguments of an Error call describing err:
// msg on its own line in red, then the error kind and text.
//
//	u.Error(ui.MessageForError(err, "sync failed")...)
func MessageForError(err error, msg string) []any {
	if err == nil {
		return []any{msg}
	}
	kind := fmt.Sprintf("%T", err)
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		kind = string(code)
	}
	return []any{style.Red, msg + "\n", kind, err.Error(), style.Reset}
}
