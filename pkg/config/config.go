package config

import (
	"os"
	"strings"
	"sync"
)

// VerboseEnv is the environment variable that turns on debug messages.
const VerboseEnv = "VERBOSE"

// Settings is a snapshot of the output configuration.
type Settings struct {
	Verbose   bool      `koanf:"verbose" toml:"verbose"`
	Quiet     bool      `koanf:"quiet" toml:"quiet"`
	Timestamp bool      `koanf:"timestamp" toml:"timestamp"`
	Color     ColorMode `koanf:"color" toml:"color"`
	Record    bool      `koanf:"record" toml:"record"`
	// Charset names the encoding of the output streams. Anything other
	// than UTF-8 makes the sink encode messages and fall back to ASCII
	// when a rune cannot be represented.
	Charset string `koanf:"charset" toml:"charset"`
}

// Config is the shared, mutable output configuration.
type Config struct {
	mu       sync.RWMutex
	settings Settings
}

// New creates a Config holding s.
func New(s Settings) *Config {
	return &Config{settings: s}
}

// DefaultSettings returns the built-in defaults. Verbose is taken from the
// VERBOSE environment variable.
func DefaultSettings() Settings {
	return Settings{
		Verbose: Truthy(os.Getenv(VerboseEnv)),
		Color:   ColorAuto,
		Charset: "utf-8",
	}
}

// Default creates a Config from DefaultSettings.
func Default() *Config {
	return New(DefaultSettings())
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Update applies fn to the settings under the write lock.
func (c *Config) Update(fn func(*Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.settings)
}

// Replace swaps all settings at once.
func (c *Config) Replace(s Settings) {
	c.Update(func(cur *Settings) { *cur = s })
}

// SetVerbose turns debug messages on or off
func (c *Config) SetVerbose(v bool) { c.Update(func(s *Settings) { s.Verbose = v }) }

// SetQuiet turns info messages off or back on
func (c *Config) SetQuiet(v bool) { c.Update(func(s *Settings) { s.Quiet = v }) }

// SetTimestamp toggles the time prefix on messages
func (c *Config) SetTimestamp(v bool) { c.Update(func(s *Settings) { s.Timestamp = v }) }

// SetColor sets when escape codes are written
func (c *Config) SetColor(m ColorMode) { c.Update(func(s *Settings) { s.Color = m }) }

// SetRecord toggles appending messages to the recorder
func (c *Config) SetRecord(v bool) { c.Update(func(s *Settings) { s.Record = v }) }

// SetCharset sets the character set output is encoded to
func (c *Config) SetCharset(cs string) { c.Update(func(s *Settings) { s.Charset = cs }) }

// Truthy reports whether an environment value should count as "on".
// Any non-empty value except 0, false, no and off is truthy.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// IsUTF8 reports whether charset names UTF-8 (or is empty).
func IsUTF8(charset string) bool {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}
