package termsay

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/termsay/internal/version"
	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/style"
)

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "colors",
		Short:   MsgColorsShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range style.Names() {
				if err := a.ui.Info(style.MustLookup(name), name, style.Reset); err != nil {
					return err
				}
			}

			aliases := style.Aliases()
			names := make([]string, 0, len(aliases))
			for alias := range aliases {
				names = append(names, alias)
			}
			sort.Strings(names)

			lines := make([]string, len(names))
			for i, alias := range names {
				lines[i] = fmt.Sprintf("%-12s -> %s", alias, aliases[alias])
			}
			return a.ui.Info(aliasBox(lines))
		},
	}
}

// aliasBox frames the alias table, with ASCII borders when the terminal
// lacks box drawing characters.
func aliasBox(lines []string) string {
	border := lipgloss.RoundedBorder()
	if !style.UnicodeSupported {
		border = lipgloss.ASCIIBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return err
			}
			data, err := toml.Marshal(a.cfg.Settings())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "termsay version %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// ManHeader is the header of the generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "TERMSAY",
		Section: "1",
		Source:  "termsay " + version.Version,
		Manual:  "termsay manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout())
		},
	}
}
