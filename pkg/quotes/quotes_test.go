package quotes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	quotes := Builtin()

	require.NotEmpty(t, quotes)
	for _, q := range quotes {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
		assert.True(t, strings.HasPrefix(q.Format(), "「"))
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
quotes:
  - text: "  Stay hungry.  "
    author: " Stewart Brand "
  - text: ""
    author: "Nobody"
  - text: "Anonymous wisdom."
`)
	quotes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "Stay hungry.", quotes[0].Text)
	assert.Equal(t, "Stewart Brand", quotes[0].Author)
	assert.Equal(t, "Unknown", quotes[1].Author)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("quotes: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	builtin := len(Builtin())

	quotes, err := Load("")
	require.NoError(t, err)
	assert.Len(t, quotes, builtin)

	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quotes:\n  - text: Ship it.\n    author: Team\n"), 0644))

	quotes, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, quotes, builtin+1)
	assert.Equal(t, "Ship it.", quotes[builtin].Text)
}

func TestLoad_MissingFileKeepsBuiltin(t *testing.T) {
	quotes, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Len(t, quotes, len(Builtin()))
}
