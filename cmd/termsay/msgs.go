package termsay

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Colorized, leveled terminal messages and prompts"
	MsgDemoShort       = "Show what termsay can print"
	MsgColorsShort     = "List the available styles"
	MsgSayShort        = "Print one leveled message"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v shows debug messages, -vv DEBUG logs, -vvv TRACE)"
	MsgFlagQuiet     = "Hide info messages"
	MsgFlagTimestamp = "Prefix messages with the current time"
	MsgFlagColor     = "When to use colors: auto, always or never"
	MsgFlagCharset   = "Character set of the terminal"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/termsay/config.toml)"
	MsgFlagTheme     = "YAML theme file for message prefixes"
	MsgFlagSlow      = "Pause after each message"
	MsgFlagTitle     = "Also set the terminal title to the message"

	// Demo section texts
	MsgDemoColors       = "We have a ton of ANSI color codes and styles such as:"
	MsgDemoEllipsis     = "Did I forget to mention the ellipsis?"
	MsgDemoCheck        = "The check?"
	MsgDemoCross        = "The cross?"
	MsgDemoBlock        = "The block?"
	MsgDemoArrow        = "The arrow?"
	MsgDemoWindows      = "They might not appear correctly on windows sadly, but they're super cool on bash!"
	MsgDemoEnumerations = "You can do pretty enumerations!"
	MsgDemoTimestamps   = "And you can add timestamps."
	MsgDemoNoTimestamps = "No more timestamps."
	MsgDemoHardToRead   = "It's hard to read."
	MsgDemoProgress     = "Unicode progress bar"
	MsgDemoTaskSuccess  = "Isn't it great when things work out?"
	MsgDemoTaskFailure  = "This one throws an error"
	MsgDemoThanks       = "Thanks!"
	MsgDemoInput        = "termsay is very good at asking questions"
	MsgDemoSugar        = "With sugar?"
	MsgDemoFruit        = "Choose a fruit"
	MsgDemoWebsite      = "What's your favorite website?"
	MsgDemoWithSugar    = "with sugar"
	MsgDemoWithoutSugar = "without sugar"

	// Error messages
	MsgErrUnknownLevel   = "unknown level %q"
	MsgErrUnknownSection = "unknown demo section %q"
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrLoadTheme      = "failed to load theme: %w"
	MsgErrNoCommand      = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/say-long.txt
	msgSayLongRaw string
	MsgSayLong    = strings.TrimSpace(msgSayLongRaw)

	//go:embed msgs/say-example.txt
	msgSayExampleRaw string
	MsgSayExample    = strings.TrimRight(msgSayExampleRaw, "\n")

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
