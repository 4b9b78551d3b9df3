package client

import (
	"context"
	"testing"

	"supportflow/internal/config"
	"supportflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func baseConfig() *config.Config {
	return &config.Config{
		Provider:       config.ProviderHuggingFace,
		HFBaseURL:      "https://router.huggingface.co/v1",
		Model:          "meta-llama/Llama-3.3-70B-Instruct",
		InferenceRoute: "cerebras",
		GeminiModel:    "gemini-2.5-flash",
	}
}

func TestNewRemoteInferenceWithoutCredential(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	inf, err := NewRemoteInference(context.Background(), baseConfig(), zap.New(core))
	require.NoError(t, err)

	assert.False(t, inf.Available())
	_, err = inf.Generate(context.Background(), "hola")
	assert.ErrorIs(t, err, entity.ErrInferenceUnavailable)
	assert.Equal(t, 1, logs.FilterMessage("inference credential not configured, running in fallback-only mode").Len())
}

func TestNewRemoteInferencePlaceholderCredential(t *testing.T) {
	cfg := baseConfig()
	cfg.HFAPIKey = "tu_clave_aqui"

	inf, err := NewRemoteInference(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, Unavailable{}, inf)
}

func TestNewRemoteInferenceHuggingFace(t *testing.T) {
	cfg := baseConfig()
	cfg.HFAPIKey = "hf_secret"

	inf, err := NewRemoteInference(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	hf, ok := inf.(*HuggingFaceClient)
	require.True(t, ok)
	assert.True(t, hf.Available())
	assert.Equal(t, "Cerebras (Llama-3.3-70B)", hf.Label())
	assert.Equal(t, "meta-llama/Llama-3.3-70B-Instruct:cerebras", hf.model)
}

func TestNewRemoteInferenceGemini(t *testing.T) {
	cfg := baseConfig()
	cfg.Provider = config.ProviderGemini
	cfg.GeminiAPIKey = "g_secret"

	inf, err := NewRemoteInference(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, inf.Available())
	assert.Equal(t, "Gemini (gemini-2.5-flash)", inf.Label())
}

func TestNewRemoteInferenceUnknownProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.Provider = "ollama"
	cfg.HFAPIKey = "x"

	_, err := NewRemoteInference(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, entity.ErrUnknownProvider)
}
