package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/typecard/typecard-cli/pkg/files"
	"github.com/typecard/typecard-cli/pkg/models"
	"github.com/typecard/typecard-cli/pkg/quotes"
)

// runCommand executes sub under a root that carries the --config flag
func runCommand(t *testing.T, sub *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "typecard", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", filepath.Join(t.TempDir(), "settings.yaml"), "")
	root.AddCommand(sub)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{sub.Name()}, args...))

	err := root.Execute()
	return buf.String(), err
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func TestSplitCommand_Text(t *testing.T) {
	text := strings.Repeat("a", 650)

	out, err := runCommand(t, NewSplitCommand(), "", text)
	require.NoError(t, err)

	assert.Contains(t, out, "BLOCK")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "3/3")
	assert.Contains(t, out, "Total: 3 blocks, 650 characters")
}

func TestSplitCommand_JSON(t *testing.T) {
	out, err := runCommand(t, NewSplitCommand(), "", "--format", "json", strings.Repeat("b", 301))
	require.NoError(t, err)

	var result SplitResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 301, result.Length)
	assert.Equal(t, 300, result.BlockSize)
	require.Len(t, result.Blocks, 2)
	assert.Equal(t, models.BlockExport{Index: 2, Length: 1, Text: "b"}, result.Blocks[1])
}

func TestSplitCommand_YAMLFromStdin(t *testing.T) {
	out, err := runCommand(t, NewSplitCommand(), "hello world\n", "--format", "yaml")
	require.NoError(t, err)

	var result SplitResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Len(t, result.Blocks, 1)
	assert.Equal(t, "hello world", result.Blocks[0].Text)
}

func TestSplitCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("日本語"), 0644))

	out, err := runCommand(t, NewSplitCommand(), "", "--file", path, "--raw")
	require.NoError(t, err)
	assert.Equal(t, "日本語\n", out)
}

func TestSplitCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"blank text", []string{"   "}, "nothing to split"},
		{"bad format", []string{"--format", "xml", "hi"}, "invalid output format"},
		{"missing file", []string{"--file", "/does/not/exist"}, "failed to read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, NewSplitCommand(), "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSplitText_MatchesSegmenter(t *testing.T) {
	result := splitText(strings.Repeat("x", 600))

	assert.Equal(t, 2, result.Count)
	for i, b := range result.Blocks {
		assert.Equal(t, i+1, b.Index)
		assert.Equal(t, 300, b.Length)
	}
}

func TestQuoteCommand(t *testing.T) {
	formatted := make(map[string]bool)
	for _, q := range quotes.Builtin() {
		formatted[q.Format()] = true
	}

	out, err := runCommand(t, NewQuoteCommand(), "")
	require.NoError(t, err)
	assert.True(t, formatted[strings.TrimSpace(out)], "unexpected quote %q", out)
}

func TestQuoteCommand_Copy(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	out, err := runCommand(t, NewQuoteCommand(), "", "--copy")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(out), copied)
}

func TestQuoteCommand_CopyFailure(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	_, err := runCommand(t, NewQuoteCommand(), "", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard")
}

func TestQuoteCommand_ListJSON(t *testing.T) {
	out, err := runCommand(t, NewQuoteCommand(), "", "--list", "--format", "json")
	require.NoError(t, err)

	var list []models.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, quotes.Builtin(), list)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typecard", "settings.yaml")

	_, err := runCommand(t, NewInitCommand(), "", "--config", path)
	require.NoError(t, err)

	settings, err := files.ReadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestInitCommand_ForceAsksFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	custom := models.DefaultSettings()
	custom.UI.Theme = "light"
	require.NoError(t, files.WriteSettings(path, custom))

	_, err := runCommand(t, NewInitCommand(), "", "--config", path)
	require.NoError(t, err)
	settings, _ := files.ReadSettings(path)
	assert.Equal(t, "light", settings.UI.Theme, "kept without --force")

	_, err = runCommand(t, NewInitCommand(), "n\n", "--config", path, "--force")
	require.NoError(t, err)
	settings, _ = files.ReadSettings(path)
	assert.Equal(t, "light", settings.UI.Theme, "kept when declined")

	_, err = runCommand(t, NewInitCommand(), "y\n", "--config", path, "--force")
	require.NoError(t, err)
	settings, _ = files.ReadSettings(path)
	assert.Equal(t, "dark", settings.UI.Theme)
}
