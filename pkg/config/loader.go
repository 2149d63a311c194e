package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/logging"
)

const (
	// EnvPrefix prefixes environment variables that override config keys,
	// e.g. TERMSAY_COLOR=never.
	EnvPrefix = "TERMSAY_"

	// UserConfigName is the config file looked up under the XDG config dirs.
	UserConfigName = "termsay/config.toml"
)

// LoadOptions tunes Load.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set. When empty
	// the XDG config directories are searched for UserConfigName.
	Path string

	// Overrides are applied last, typically from command-line flags.
	Overrides map[string]interface{}
}

// Load builds a Config from, in increasing priority: the embedded defaults,
// VERBOSE, the user config file, TERMSAY_* variables and opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	settings, err := LoadSettings(opts)
	if err != nil {
		return nil, err
	}
	return New(settings), nil
}

// LoadSettings is Load without wrapping the result in a Config.
func LoadSettings(opts LoadOptions) (Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Legacy VERBOSE flag
	if Truthy(os.Getenv(VerboseEnv)) {
		if err := k.Load(confmap.Provider(map[string]interface{}{"verbose": true}, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply VERBOSE")
		}
	}

	// 3. Config file
	path, err := resolveConfigPath(opts.Path)
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return settings, nil
}

// UserConfigPath returns where the user config file lives (or would live).
func UserConfigPath() string {
	if path, err := xdg.SearchConfigFile(UserConfigName); err == nil {
		return path
	}
	return filepath.Join(xdg.ConfigHome, UserConfigName)
}

func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(UserConfigName)
	if err != nil {
		// No user config is the common case
		return "", nil
	}
	return path, nil
}
