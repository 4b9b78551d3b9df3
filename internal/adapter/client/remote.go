package client

import (
	"context"
	"fmt"

	"supportflow/internal/config"
	"supportflow/internal/domain/entity"
	"supportflow/internal/domain/repository"

	"go.uber.org/zap"
)

// Unavailable is the RemoteInference state used when no credential was
// configured. Generate always fails with entity.ErrInferenceUnavailable.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }
func (Unavailable) Label() string   { return "unavailable" }

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", entity.ErrInferenceUnavailable
}

// NewRemoteInference builds the inference client selected by cfg. A missing
// credential is not an error: it logs a warning and returns Unavailable.
func NewRemoteInference(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.InferenceClient, error) {
	key := cfg.Credential()
	if key == "" {
		log.Warn("inference credential not configured, running in fallback-only mode",
			zap.String("provider", cfg.Provider),
			zap.String("env", cfg.CredentialEnvVar()),
		)
		return Unavailable{}, nil
	}

	switch cfg.Provider {
	case config.ProviderHuggingFace:
		c := NewHuggingFaceClient(key, cfg.HFBaseURL, cfg.Model, cfg.InferenceRoute)
		log.Info("remote inference configured", zap.String("provider", cfg.Provider), zap.String("model", c.Label()))
		return c, nil
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, key, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini client setup failed, running in fallback-only mode", zap.Error(err))
			return Unavailable{}, nil
		}
		log.Info("remote inference configured", zap.String("provider", cfg.Provider), zap.String("model", c.Label()))
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownProvider, cfg.Provider)
	}
}
