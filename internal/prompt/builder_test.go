package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder("", "Tweet", 10)
	require.NoError(t, err)

	got := b.Build([]string{"$TAO broke resistance.", "ETH & the gas fees"})

	assert.Contains(t, got, "Web3Wizard")
	assert.Contains(t, got, "generate 10 new tweets")
	assert.Contains(t, got, "Example Tweets:\n$TAO broke resistance.\nETH & the gas fees\n")
	assert.Contains(t, got, `starting with "Tweet X:"`)
	assert.NotContains(t, got, "&amp;", "examples must not be HTML escaped")
}

func TestBuildEmptyExamples(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder("Examples:\n{{.Examples}}|", "Item", 3)
	require.NoError(t, err)

	assert.Equal(t, "Examples:\n|", b.Build(nil))
	assert.Equal(t, "Examples:\n|", b.Build([]string{}))
}

func TestBuildIsPure(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder("", "", 0)
	require.NoError(t, err)

	examples := []string{"one", "two"}
	first := b.Build(examples)
	second := b.Build(examples)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"one", "two"}, examples)
	assert.Equal(t, "Tweet", b.Label())
	assert.Equal(t, 10, b.Count())
}

func TestCustomTemplate(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder("Write {{.Count}} posts as \"{{.Label}} N:\" like:\n{{.Examples}}", "Post", 5)
	require.NoError(t, err)

	assert.Equal(t, "Write 5 posts as \"Post N:\" like:\na\nb", b.Build([]string{"a", "b"}))
}

func TestNewBuilderRejectsBadTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "syntax error", text: "Prompt: {{.Examples"},
		{name: "unknown field", text: "Prompt: {{.MemoText}}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuilder(tc.text, "Tweet", 10)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemplate))
		})
	}
}

func TestLoadBuilder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("From file: {{.Examples}}"), 0o600))

	b, err := LoadBuilder(path, "Tweet", 10)
	require.NoError(t, err)
	assert.Equal(t, "From file: x", b.Build([]string{"x"}))

	b, err = LoadBuilder("", "Tweet", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.Build(nil), "You are Web3Wizard"))

	_, err = LoadBuilder(filepath.Join(dir, "missing.tmpl"), "Tweet", 10)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

// dataDependentTemplate passes the construction dry run but fails for
// short example text.
const dataDependentTemplate = `{{if eq .Examples "example"}}ok{{else}}{{index .Examples 99}}{{end}}`

func TestRenderReportsTemplateFailure(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(dataDependentTemplate, "Tweet", 10)
	require.NoError(t, err)

	_, err = b.Render([]string{"short"})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	got, err := b.Render([]string{"example"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestBuildFallsBackToBuiltInTemplate(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(dataDependentTemplate, "Tweet", 10)
	require.NoError(t, err)

	got := b.Build([]string{"short"})
	assert.Contains(t, got, "Web3Wizard")
	assert.Contains(t, got, "short")
}
