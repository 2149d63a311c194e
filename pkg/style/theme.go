package style

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/termsay/pkg/errors"
)

// Role names a themed message prefix
type Role string

// Message roles. The leveled roles prefix messages of their level; the
// others style counters, prompts, choice indexes and task names.
const (
	// RoleError prefixes Error and Fatal
	RoleError Role = "error"
	// RoleWarning prefixes Warning
	RoleWarning Role = "warning"
	// RoleDebug prefixes Debug
	RoleDebug Role = "debug"
	// RolePrimary prefixes Info1
	RolePrimary Role = "primary"
	// RoleSecondary prefixes Info2
	RoleSecondary Role = "secondary"
	// RoleTertiary prefixes Info3
	RoleTertiary Role = "tertiary"
	// RoleCounter styles the InfoCount counter
	RoleCounter Role = "counter"
	// RolePrompt prefixes questions
	RolePrompt Role = "prompt"
	// RoleInput is the marker answers are typed after
	RoleInput Role = "input"
	// RoleChoice styles AskChoice indexes
	RoleChoice Role = "choice"
	// RoleTask styles Task names
	RoleTask Role = "task"
)

// Prefix is the styled text a role draws in front of a message. Roles
// with an empty Text only contribute their styles.
type Prefix struct {
	Styles []Style
	Text   string
}

// Theme maps roles to prefixes
type Theme map[Role]Prefix

// Prefix returns the prefix of role, or an empty one
func (t Theme) Prefix(role Role) Prefix {
	return t[role]
}

// PrefixDef represents a prefix definition in YAML
type PrefixDef struct {
	Styles []string `yaml:"styles"`
	Text   string   `yaml:"text"`
}

// ThemeConfig represents the complete theme file
type ThemeConfig struct {
	Roles map[string]PrefixDef `yaml:"roles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

var (
	themeMu      sync.RWMutex
	defaultTheme Theme
)

func init() {
	theme, err := ParseTheme(embeddedTheme)
	if err != nil {
		// Use built-in prefixes instead of panicking
		theme = builtinTheme()
	}
	defaultTheme = theme
}

// builtinTheme mirrors theme.yaml and backs it up if the embedded file
// cannot be parsed.
func builtinTheme() Theme {
	return Theme{
		RoleError:     {Styles: []Style{Bold, Red}, Text: "[ERROR]:"},
		RoleWarning:   {Styles: []Style{Brown}, Text: "[WARN ]:"},
		RoleDebug:     {Styles: []Style{Blue}, Text: "[DEBUG]:"},
		RolePrimary:   {Styles: []Style{Bold, Blue}, Text: "::"},
		RoleSecondary: {Styles: []Style{Bold, Blue}, Text: "=>"},
		RoleTertiary:  {Styles: []Style{Bold, Blue}, Text: "*"},
		RoleCounter:   {Styles: []Style{Green}, Text: "*"},
		RolePrompt:    {Styles: []Style{Green}, Text: "::"},
		RoleInput:     {Styles: []Style{Green}, Text: ">"},
		RoleChoice:    {Styles: []Style{Blue}},
		RoleTask:      {Styles: []Style{Green}},
	}
}

// DefaultTheme returns a copy of the active default theme
func DefaultTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return defaultTheme.clone()
}

// SetDefaultTheme replaces the default theme
func SetDefaultTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	defaultTheme = t.clone()
}

// ParseTheme parses theme YAML. Roles missing from data keep their
// built-in prefix; unknown style names are rejected.
func ParseTheme(data []byte) (Theme, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "failed to parse theme")
	}

	theme := builtinTheme()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(cfg.Roles))
	for name := range cfg.Roles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := cfg.Roles[name]
		styles := make([]Style, 0, len(def.Styles))
		for _, styleName := range def.Styles {
			s, err := Lookup(styleName)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrThemeLoad, "role %s", name).
					WithDetail("role", name)
			}
			styles = append(styles, s)
		}
		theme[Role(name)] = Prefix{Styles: styles, Text: def.Text}
	}

	return theme, nil
}

// LoadTheme loads a theme from a YAML file
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}
	return ParseTheme(data)
}

func (t Theme) clone() Theme {
	out := make(Theme, len(t))
	for role, p := range t {
		out[role] = Prefix{Styles: append([]Style(nil), p.Styles...), Text: p.Text}
	}
	return out
}
