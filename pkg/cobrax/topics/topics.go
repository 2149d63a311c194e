// Package topics adds help topics to a Cobra command tree. Topics are text
// or markdown files read from an fs.FS, usually an embedded directory, and
// are shown by "help <topic>" next to the regular command help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/ui"
)

// optionPrefix marks topics documenting a flag, e.g. option-color.md
const optionPrefix = "option-"

// TopicManager holds the topics of one command tree
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format returns the file extension of the topic, used to pick rendering
func (t *Topic) Format() string {
	return path.Ext(t.Path)
}

// Options configures a TopicManager
type Options struct {
	// Extensions lists the file extensions read as topics. Defaults to
	// .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New loads the topics found under dir in fsys
func New(fsys fs.FS, dir string, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if err := tm.scan(fsys, dir); err != nil {
		return nil, err
	}
	return tm, nil
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

func (tm *TopicManager) scan(fsys fs.FS, dir string) error {
	if _, err := fs.Stat(fsys, dir); err != nil {
		// No topic directory, no topics
		return nil
	}

	return fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read topic %s", p)
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

// GetTopic finds a topic by name. Flag spellings such as "--color" match
// the option-color topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns the topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the manager's renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, topic.Format())
}

// WriteList prints the available topics, options apart from the rest
func (tm *TopicManager) WriteList(w io.Writer, program string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

func (tm *TopicManager) candidates(root *cobra.Command) []string {
	out := []string{"topics"}
	for _, c := range root.Commands() {
		if !c.Hidden {
			out = append(out, c.Name())
		}
	}
	return append(out, tm.ListTopics()...)
}

// helpTarget drops the global flags left in args once flag parsing is
// disabled, returning what help was asked about. A flag spelling that names
// a topic is the target when it is the last argument.
func helpTarget(root *cobra.Command, tm *TopicManager, args []string) []string {
	flags := root.PersistentFlags()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return args[i:]
		}
		if _, ok := tm.GetTopic(arg); ok && i == len(args)-1 {
			return args[i:]
		}

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		flag := flags.Lookup(name)
		if !strings.HasPrefix(arg, "--") && len(name) == 1 {
			flag = flags.ShorthandLookup(name)
		}
		if flag != nil && flag.NoOptDefVal == "" {
			// skip the flag value
			i++
		}
	}
	return nil
}

// Initialize loads topics from fsys and installs a help command that knows
// about them on rootCmd.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, dir string, opts Options) (*TopicManager, error) {
	tm, err := New(fsys, dir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	logger := logging.GetLogger("topics")
	logger.Debug().Int("count", len(tm.topics)).Msg("Help topics loaded")

	originalHelp := rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		// Topics may be named like flags ("help --color"), so arguments
		// reach Run unparsed.
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.candidates(rootCmd), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if arg == "-h" || arg == "--help" {
					originalHelp(cmd, nil)
					return
				}
			}
			args = helpTarget(rootCmd, tm, args)
			if len(args) == 0 {
				originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				tm.WriteList(out, program)
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(out, tm.Render(topic))
				return
			}
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				originalHelp(target, args)
				return
			}
			msg := fmt.Sprintf("Unknown help topic %q.", args[0])
			fmt.Fprintln(cmd.ErrOrStderr(), ui.DidYouMean(msg, args[0], tm.candidates(rootCmd)))
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
				return
			}
		}
		originalHelp(cmd, args)
	})

	return tm, nil
}
