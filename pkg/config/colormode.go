package config

import (
	"fmt"
	"strings"
)

// ColorMode controls whether escape codes are written to a stream.
type ColorMode int

const (
	// ColorAuto writes colors only to streams that look like terminals
	ColorAuto ColorMode = iota
	// ColorAlways writes colors regardless of the stream
	ColorAlways
	// ColorNever always writes plain text
	ColorNever
)

// String returns the string representation of the color mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "yes", "force":
		return ColorAlways, nil
	case "never", "off", "no", "none":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *ColorMode) UnmarshalText(text []byte) error {
	parsed, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Set implements pflag.Value so the mode can back a --color flag.
func (m *ColorMode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type implements pflag.Value
func (m *ColorMode) Type() string {
	return "auto|always|never"
}
