package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/style"
)

func TestDefaultTheme(t *testing.T) {
	theme := style.DefaultTheme()

	expected := map[style.Role]string{
		style.RoleError:     "[ERROR]:",
		style.RoleWarning:   "[WARN ]:",
		style.RoleDebug:     "[DEBUG]:",
		style.RolePrimary:   "::",
		style.RoleSecondary: "=>",
		style.RoleTertiary:  "*",
		style.RoleCounter:   "*",
		style.RolePrompt:    "::",
		style.RoleInput:     ">",
	}
	for role, text := range expected {
		t.Run(string(role), func(t *testing.T) {
			assert.Equal(t, text, theme.Prefix(role).Text)
			assert.NotEmpty(t, theme.Prefix(role).Styles)
		})
	}

	assert.Equal(t, []style.Style{style.Bold, style.Red}, theme.Prefix(style.RoleError).Styles)
}

func TestParseThemeKeepsMissingRoles(t *testing.T) {
	theme, err := style.ParseTheme([]byte(`
roles:
  error:
    styles: [darkred, underline]
    text: "E"
`))
	require.NoError(t, err)

	assert.Equal(t, style.Prefix{Styles: []style.Style{style.DarkRed, style.Underline}, Text: "E"},
		theme.Prefix(style.RoleError))
	assert.Equal(t, "[WARN ]:", theme.Prefix(style.RoleWarning).Text)
}

func TestParseThemeErrors(t *testing.T) {
	t.Run("unknown style", func(t *testing.T) {
		_, err := style.ParseTheme([]byte("roles:\n  error:\n    styles: [mauve]\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := style.ParseTheme([]byte("roles: [unterminated"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := style.LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
	})
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  primary:\n    styles: [teal]\n    text: \">>\"\n"), 0644))

	theme, err := style.LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, ">>", theme.Prefix(style.RolePrimary).Text)
}

func TestSetDefaultTheme(t *testing.T) {
	saved := style.DefaultTheme()
	t.Cleanup(func() { style.SetDefaultTheme(saved) })

	custom := style.DefaultTheme()
	custom[style.RolePrimary] = style.Prefix{Text: "#"}
	style.SetDefaultTheme(custom)

	got := style.DefaultTheme()
	assert.Equal(t, "#", got.Prefix(style.RolePrimary).Text)

	// Callers get copies
	got[style.RolePrimary] = style.Prefix{Text: "changed"}
	assert.Equal(t, "#", style.DefaultTheme().Prefix(style.RolePrimary).Text)
}
