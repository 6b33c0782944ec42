package llm

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "thematic-analysis-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPromptsRender(t *testing.T) {
	prompts := DefaultPrompts()

	system, user, err := prompts.Render(ServiceThemeGeneration, map[string]interface{}{
		"codes_text": "Code text: waiting times\n\n",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, system)
	assert.Contains(t, user, "Code text: waiting times")
	assert.Contains(t, user, "theme_name")

	_, user, err = prompts.Render(ServiceReportGeneration, map[string]interface{}{
		"codes_summary":     "- waiting times",
		"themes_summary":    "- Access: Getting care",
		"assignments_count": 3,
	})
	require.NoError(t, err)
	assert.Contains(t, user, "- Access: Getting care")
	assert.Contains(t, user, "Number of code assignments analysed: 3")
}

func TestRenderUnknownService(t *testing.T) {
	_, _, err := DefaultPrompts().Render(ServiceType("summarize"), nil)
	assert.ErrorIs(t, err, apperrors.ErrPromptNotConfigured)
}

func TestLoadPromptsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	content := "theme_generation:\n  system: Custom system\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	prompts, err := LoadPrompts(path)
	require.NoError(t, err)

	system, user, err := prompts.Render(ServiceThemeGeneration, map[string]interface{}{"codes_text": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "Custom system", system)
	assert.Contains(t, user, "abc", "user template falls back to the built-in one")
}

func TestLoadPromptsErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown service", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("summarize:\n  user: hi\n"), 0o600))
		_, err := LoadPrompts(path)
		assert.Error(t, err)
	})

	t.Run("broken template", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme_generation:\n  user: \"{{.codes_text\"\n"), 0o600))
		_, err := LoadPrompts(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPrompts(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		prompts, err := LoadPrompts("")
		require.NoError(t, err)
		assert.NotNil(t, prompts)
	})
}

func TestShippedPromptsFileLoads(t *testing.T) {
	prompts, err := LoadPrompts(filepath.Join("..", "..", "config", "prompts.yaml"))
	require.NoError(t, err)

	system, _, err := prompts.Render(ServiceReportGeneration, map[string]interface{}{
		"codes_summary":     "-",
		"themes_summary":    "-",
		"assignments_count": 0,
	})
	require.NoError(t, err)
	assert.Contains(t, system, "thematic analysis expert")
}
