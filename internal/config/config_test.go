package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{
		"OPENAI_API_KEY", "CLINICON_PROVIDER", "CLINICON_MODEL", "CLINICON_BASE_URL",
		"CLINICON_LOG_LEVEL", "CLINICON_LOG_FORMAT", "CLINICON_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("CLINICON_CONFIG", filepath.Join(dir, "config.yaml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.APIKey, "missing key is not an error")
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)

	yml := "provider: openrouter\nmodel: some/model\napi_key: from-file\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o600))
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "some/model", cfg.Model)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadModelFollowsProvider(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		want     string
	}{
		{"openai", "", "gpt-4.1-mini"},
		{"openrouter", "", "openai/gpt-4.1-mini"},
		{"openrouter", "anthropic/claude-sonnet-4", "anthropic/claude-sonnet-4"},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.want, func(t *testing.T) {
			isolate(t)
			t.Setenv("CLINICON_PROVIDER", tt.provider)
			t.Setenv("CLINICON_MODEL", tt.model)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Model)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CLINICON_MODEL=dotenv-model\n"), 0o600))
	// godotenv sets variables that are unset; t.Setenv above left it empty, so clear it.
	require.NoError(t, os.Unsetenv("CLINICON_MODEL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-model", cfg.Model)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{"CLINICON_PROVIDER": "nope"}},
		{"custom without base url", map[string]string{"CLINICON_PROVIDER": "custom"}},
		{"bad log level", map[string]string{"CLINICON_LOG_LEVEL": "loud"}},
		{"bad log format", map[string]string{"CLINICON_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("provider: [unterminated"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parse config")
}

func TestGetProvider(t *testing.T) {
	p := GetProvider("openrouter")
	require.NotNil(t, p)
	assert.Equal(t, "https://openrouter.ai/api/v1", p.DefaultBaseURL)
	assert.Nil(t, GetProvider("ollama"))
}
