package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ENV_FILE at a file that does not exist and clears the
// variables Load reads, so tests do not depend on the developer's shell.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, k := range []string{
		"HOST", "PORT", "FRONTEND_DIR", "CORS_ALLOW_ORIGINS", "APP_VERSION",
		"INFERENCE_PROVIDER", "HUGGINGFACE_API_KEY", "HF_BASE_URL", "INFERENCE_MODEL",
		"INFERENCE_ROUTE", "GOOGLE_GEMINI_API_KEY", "GEMINI_MODEL", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
	assert.Equal(t, ProviderHuggingFace, cfg.Provider)
	assert.Equal(t, "https://router.huggingface.co/v1", cfg.HFBaseURL)
	assert.Equal(t, "meta-llama/Llama-3.3-70B-Instruct", cfg.Model)
	assert.Equal(t, "cerebras", cfg.InferenceRoute)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "frontend", cfg.FrontendDir)
	assert.Empty(t, cfg.Credential())
}

func TestLoadFromDotenv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HUGGINGFACE_API_KEY=hf_secret\nPORT=9100\n"), 0o600))
	t.Setenv("ENV_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hf_secret", cfg.Credential())
	assert.Equal(t, 9100, cfg.Port)
}

func TestCredentialPlaceholderIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("HUGGINGFACE_API_KEY", "tu_clave_aqui")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Credential())
}

func TestCredentialFollowsProvider(t *testing.T) {
	isolate(t)
	t.Setenv("INFERENCE_PROVIDER", "Gemini")
	t.Setenv("HUGGINGFACE_API_KEY", "hf_secret")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "g_secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g_secret", cfg.Credential())
	assert.Equal(t, "GOOGLE_GEMINI_API_KEY", cfg.CredentialEnvVar())
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	isolate(t)
	t.Setenv("INFERENCE_PROVIDER", "ollama")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid INFERENCE_PROVIDER")
}

func TestLoadRejectsBadPort(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid PORT")
}
