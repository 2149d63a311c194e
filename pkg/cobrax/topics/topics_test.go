package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termsay/pkg/cobrax/topics"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"help/colors.md":       {Data: []byte("# Colors\n\nAll the styles")},
		"help/quiet.txt":       {Data: []byte("Quiet mode hides info messages")},
		"help/option-color.md": {Data: []byte("# --color\n\nauto, always or never")},
		"help/notes.txxt":      {Data: []byte("Extra notes")},
		"help/ignore.json":     {Data: []byte("{}")},
		"help/nested/deep.md":  {Data: []byte("nested topic")},
	}
}

func TestNewScansTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm, err := topics.New(topicFS(), "help", topics.Options{})
		require.NoError(t, err)

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"colors", true, "# Colors\n\nAll the styles"},
			{"quiet", true, "Quiet mode hides info messages"},
			{"deep", true, "nested topic"},
			{"notes", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := tm.GetTopic(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm, err := topics.New(topicFS(), "help", topics.Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		tm, err := topics.New(topicFS(), "nope", topics.Options{})
		require.NoError(t, err)
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagSpelling(t *testing.T) {
	tm, err := topics.New(topicFS(), "help", topics.Options{})
	require.NoError(t, err)

	for _, name := range []string{"color", "--color", "-color", "option-color"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-color", topic.Name)
		assert.Equal(t, ".md", topic.Format())
	}
}

func TestWriteList(t *testing.T) {
	tm, err := topics.New(topicFS(), "help", topics.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	tm.WriteList(&buf, "termsay")

	want := "Available help topics:\n" +
		"\nGeneral topics:\n  colors\n  deep\n  quiet\n" +
		"\nOption topics:\n  --color\n" +
		"\nUse 'termsay help <topic>' to read about a specific topic.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteListEmpty(t *testing.T) {
	tm, err := topics.New(fstest.MapFS{}, "help", topics.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	tm.WriteList(&buf, "termsay")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return "[" + format + "]" + content
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "termsay", Short: "say things"}
	root.PersistentFlags().String("color", "auto", "when to use colors")
	root.PersistentFlags().CountP("verbose", "v", "verbosity")
	root.AddCommand(&cobra.Command{Use: "say", Short: "say one message", Run: func(*cobra.Command, []string) {}})
	return root
}

func runHelp(t *testing.T, args ...string) (string, string) {
	t.Helper()

	root := newRoot()
	_, err := topics.Initialize(root, topicFS(), "help", topics.Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return stdout.String(), stderr.String()
}

func TestHelpCommandShowsTopic(t *testing.T) {
	out, _ := runHelp(t, "quiet")
	assert.Equal(t, "[.txt]Quiet mode hides info messages", out)

	out, _ = runHelp(t, "--color")
	assert.Equal(t, "[.md]# --color\n\nauto, always or never", out)
}

func TestHelpCommandSkipsGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"flag with value before topic", []string{"--color", "never", "quiet"}, "[.txt]Quiet mode hides info messages"},
		{"inline flag value", []string{"--color=never", "quiet"}, "[.txt]Quiet mode hides info messages"},
		{"count flag", []string{"-v", "quiet"}, "[.txt]Quiet mode hides info messages"},
		{"flag topic after flags", []string{"-v", "--color"}, "[.md]# --color\n\nauto, always or never"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runHelp(t, tt.args...)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHelpCommandOwnHelp(t *testing.T) {
	out, _ := runHelp(t, "--help")
	assert.Contains(t, out, "termsay help topics")
}

func TestHelpCommandListsTopics(t *testing.T) {
	out, _ := runHelp(t, "topics")
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "--color")
}

func TestHelpCommandFallsBackToCommandHelp(t *testing.T) {
	out, _ := runHelp(t, "say")
	assert.Contains(t, out, "say one message")
}

func TestHelpCommandSuggestsTopic(t *testing.T) {
	_, errOut := runHelp(t, "colrs")
	assert.Contains(t, errOut, `Unknown help topic "colrs".`)
	assert.Contains(t, errOut, "Did you mean: colors?")
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "# title", r.Render("# title", ".md"))
}

func TestGlamourRendererSkipsPlainText(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
