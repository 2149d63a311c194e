package termsay

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/ui"
)

// levels maps the say levels to UI methods. fatal is handled apart since
// it does not return.
var levels = map[string]func(*ui.UI, ...any) error{
	"error":   (*ui.UI).Error,
	"warning": (*ui.UI).Warning,
	"info":    (*ui.UI).Info,
	"debug":   (*ui.UI).Debug,
	"info1":   (*ui.UI).Info1,
	"info2":   (*ui.UI).Info2,
	"info3":   (*ui.UI).Info3,
}

const levelFatal = "fatal"

func levelNames() []string {
	names := make([]string, 0, len(levels)+1)
	for name := range levels {
		names = append(names, name)
	}
	names = append(names, levelFatal)
	sort.Strings(names)
	return names
}

func newSayCmd(a *app) *cobra.Command {
	var title bool

	cmd := &cobra.Command{
		Use:     "say <level> [words...]",
		Short:   MsgSayShort,
		Long:    MsgSayLong,
		Example: MsgSayExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return levelNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := strings.ToLower(args[0])
			words, err := parseMarkup(args[1:])
			if err != nil {
				return err
			}

			if level == levelFatal {
				a.ui.Fatal(words...)
				return nil
			}

			say, ok := levels[level]
			if !ok {
				return fmt.Errorf("%s", ui.DidYouMean(fmt.Sprintf(MsgErrUnknownLevel, args[0]), level, levelNames()))
			}
			if err := say(a.ui, words...); err != nil {
				return err
			}
			if title {
				return a.ui.Title(words...)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&title, "title", false, MsgFlagTitle)

	return cmd
}

var markup = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// parseMarkup turns words into message arguments, replacing every {name}
// with the named style. Text on both sides of a style becomes two values,
// so the message separator goes between them.
func parseMarkup(words []string) ([]any, error) {
	var out []any
	for _, word := range words {
		matches := markup.FindAllStringSubmatchIndex(word, -1)
		if matches == nil {
			out = append(out, word)
			continue
		}
		last := 0
		for _, m := range matches {
			if m[0] > last {
				out = append(out, word[last:m[0]])
			}
			s, err := style.Lookup(word[m[2]:m[3]])
			if err != nil {
				return nil, err
			}
			out = append(out, s)
			last = m[1]
		}
		if last < len(word) {
			out = append(out, word[last:])
		}
	}
	return out, nil
}
