package ui

import (
	"strings"

	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
)

// Task announces a step, runs fn and reports how it went:
//
//	build: compile sources…… ✓
//
// Exactly one of the check or the cross glyph follows the announcement,
// whether fn returns nil, returns an error or panics. Errors are returned
// unchanged and panics are re-raised after the cross is printed.
func (u *UI) Task(name, desc string, fn func() error) (err error) {
	logger := logging.GetLogger("ui")
	done := logging.LogOperationStart(logger, name)
	defer done()

	opts := DefaultMessageOptions()
	opts.End = " "
	_ = u.infoWith(opts, u.taskTokens(name, desc))

	defer func() {
		if r := recover(); r != nil {
			logger.Debug().Interface("panic", r).Str("task", name).Msg("Task panicked")
			_ = u.infoWith(DefaultMessageOptions(), token.From(style.Cross))
			panic(r)
		}
		if err != nil {
			logger.Debug().Err(err).Str("task", name).Msg("Task failed")
			_ = u.infoWith(DefaultMessageOptions(), token.From(style.Cross))
			return
		}
		_ = u.infoWith(DefaultMessageOptions(), token.From(style.Check))
	}()

	return fn()
}

func (u *UI) taskTokens(name, desc string) []token.Token {
	p := u.theme.Prefix(style.RoleTask)
	tokens := make([]token.Token, 0, len(p.Styles)+4)
	for _, s := range p.Styles {
		tokens = append(tokens, token.S(s))
	}
	label := name + ":"
	if p.Text != "" {
		label = p.Text + " " + label
	}
	tokens = append(tokens, token.V(label), token.S(style.Reset))
	return append(tokens, token.V(desc+strings.Repeat(style.Ellipsis.Text(), 2)))
}
