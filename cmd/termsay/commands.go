// Package termsay implements the termsay command line tool, a showcase and
// shell front end for the termsay library.
package termsay

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termsay/internal/version"
	"github.com/arthur-debert/termsay/pkg/cobrax/topics"
	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/logging"
	"github.com/arthur-debert/termsay/pkg/sink"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/ui"
	"github.com/arthur-debert/termsay/pkg/ui/input"
)

//go:embed topics
var topicFiles embed.FS

// rootOptions holds the global flags
type rootOptions struct {
	verbosity  int
	quiet      bool
	timestamp  bool
	color      config.ColorMode
	charset    string
	configPath string
	themePath  string
}

// app is the state shared by the commands of one invocation
type app struct {
	cfg   *config.Config
	ui    *ui.UI
	theme style.Theme
	exit  func(int)

	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.Exit)
}

func newRootCmd(exit func(int)) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}
	a := &app{exit: exit}

	rootCmd := &cobra.Command{
		Use:     "termsay",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// -v only shows debug messages; -vv and up also raise the log level
			logging.SetupLogger(max(opts.verbosity-1, 0))
			logger := logging.GetLogger("cmd")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.BoolVar(&opts.timestamp, "timestamp", false, MsgFlagTimestamp)
	flags.Var(&opts.color, "color", MsgFlagColor)
	flags.StringVar(&opts.charset, "charset", "", MsgFlagCharset)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.themePath, "theme", "", MsgFlagTheme)

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSayCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newColorsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	renderer := topics.Renderer(topics.NewPlainGlamourRenderer())
	if sink.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, topicFiles, "topics", topics.Options{Renderer: renderer}); err != nil {
		logger := logging.GetLogger("cmd")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration, flags last, and builds the UI
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cmd")

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if opts.verbosity > 0 {
		overrides["verbose"] = true
	}
	if flags.Changed("quiet") {
		overrides["quiet"] = opts.quiet
	}
	if flags.Changed("timestamp") {
		overrides["timestamp"] = opts.timestamp
	}
	if flags.Changed("color") {
		overrides["color"] = opts.color.String()
	}
	if flags.Changed("charset") {
		overrides["charset"] = opts.charset
	}

	cfg, err := config.Load(config.LoadOptions{Path: opts.configPath, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	a.theme = style.DefaultTheme()
	if opts.themePath != "" {
		theme, err := style.LoadTheme(opts.themePath)
		if err != nil {
			return fmt.Errorf(MsgErrLoadTheme, err)
		}
		a.theme = theme
	}

	a.stdout = stream(cmd.OutOrStdout())
	a.stderr = stream(cmd.ErrOrStderr())
	a.stdin = cmd.InOrStdin()
	a.ui = a.newUI()

	settings := cfg.Settings()
	logger.Debug().
		Bool("verbose", settings.Verbose).
		Bool("quiet", settings.Quiet).
		Str("color", settings.Color.String()).
		Str("charset", settings.Charset).
		Msg("Configuration loaded")
	return nil
}

// newUI builds a UI over the command streams. Extra sink options apply to
// this UI only.
func (a *app) newUI(sinkOpts ...sink.Option) *ui.UI {
	opts := []ui.Option{
		ui.WithStdout(a.stdout),
		ui.WithStderr(a.stderr),
		ui.WithTheme(a.theme),
		ui.WithExit(a.exit),
		ui.WithSinkOptions(sinkOpts...),
	}
	if a.stdin != os.Stdin {
		opts = append(opts, ui.WithInput(input.NewStreamReader(a.stdin, a.stdout)))
	}
	return ui.New(a.cfg, opts...)
}

// stream wraps terminal files so escape codes work on Windows consoles
func stream(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}
