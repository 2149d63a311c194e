package ui

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
	"github.com/arthur-debert/termsay/pkg/ui/input"
)

// ChoicePolicy decides what AskChoice does when the answer is empty
type ChoicePolicy int

const (
	// EmptyPicksFirst returns the first choice, which is marked as default
	EmptyPicksFirst ChoicePolicy = iota
	// EmptyCancels returns input.ErrInterrupted
	EmptyCancels
	// EmptyReprompts asks again
	EmptyReprompts
)

func (p ChoicePolicy) String() string {
	switch p {
	case EmptyPicksFirst:
		return "first"
	case EmptyCancels:
		return "cancel"
	case EmptyReprompts:
		return "reprompt"
	default:
		return "unknown"
	}
}

func (u *UI) lineReader() input.LineReader {
	u.readerMu.Lock()
	defer u.readerMu.Unlock()
	if u.reader == nil {
		u.reader = input.New()
	}
	return u.reader
}

// readInput reads one answer after the input marker. The marker goes
// through the reader so line editing can redraw it.
func (u *UI) readInput() (string, error) {
	prompt := ""
	if !u.cfg.Settings().Quiet {
		if text := u.theme.Prefix(style.RoleInput).Text; text != "" {
			prompt = text + " "
		}
	}
	answer, err := u.lineReader().ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (u *UI) ask(args ...any) error {
	return u.infoTokens(append(u.prefix(style.RolePrompt), token.From(args...)...))
}

// AskString asks for free text. An empty answer returns def; so does an
// interrupted prompt when def is set.
func (u *UI) AskString(question, def string) (string, error) {
	if def != "" {
		question += " (Default: " + def + ")"
	}
	if err := u.ask(question); err != nil {
		return "", err
	}

	answer, err := u.readInput()
	if err != nil {
		if def != "" && errors.IsErrorCode(err, errors.ErrInterrupted) {
			return def, nil
		}
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskYesNo asks until the answer is y, yes, n, no or empty. Empty picks
// def. An interrupted prompt returns input.ErrInterrupted.
func (u *UI) AskYesNo(question string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}

	for {
		if err := u.ask(question, hint); err != nil {
			return false, err
		}
		answer, err := u.readInput()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return def, nil
		}
		_ = u.Warning("Please answer by 'y' (yes) or 'n' (no)")
	}
}

// AskChoice lists choices with their 1 based index and asks for one.
// Answers that are not a valid index are reported and asked again; an
// empty answer follows the UI's ChoicePolicy.
func (u *UI) AskChoice(question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "no choices to pick from")
	}
	if err := u.ask(question); err != nil {
		return "", err
	}

	choiceStyle := u.theme.Prefix(style.RoleChoice)
	for i, choice := range choices {
		if i == 0 && u.policy == EmptyPicksFirst {
			choice += " \t(default)"
		}
		tokens := []token.Token{token.V("  ")}
		for _, s := range choiceStyle.Styles {
			tokens = append(tokens, token.S(s))
		}
		tokens = append(tokens, token.V(strconv.Itoa(i+1)), token.S(style.Reset), token.V(choice))
		if err := u.infoTokens(tokens); err != nil {
			return "", err
		}
	}

	logger := logging.GetLogger("ui")
	for {
		answer, err := u.readInput()
		if err != nil {
			return "", err
		}

		if answer == "" {
			switch u.policy {
			case EmptyPicksFirst:
				return choices[0], nil
			case EmptyCancels:
				return "", input.ErrInterrupted
			default:
				_ = u.Info("Please enter number")
				continue
			}
		}

		index, err := strconv.Atoi(answer)
		if err != nil {
			_ = u.Info("Please enter number")
			continue
		}
		if index < 1 || index > len(choices) {
			invalid := errors.Newf(errors.ErrInvalidChoice, "%d is out of range", index).
				WithDetail("choices", len(choices))
			logger.Debug().Err(invalid).Msg("Asking again")
			_ = u.Info(index, "is out of range")
			continue
		}
		return choices[index-1], nil
	}
}
