package repository

import (
	"context"

	"supportflow/internal/domain/entity"
)

// InferenceClient is the remote chat-completion capability. Generate returns
// the provider's failure unchanged so callers can apply one fallback policy.
type InferenceClient interface {
	Generate(ctx context.Context, message string) (string, error)
	Available() bool
	Label() string
}

type FallbackResponder interface {
	Respond(message string) string
}

type SentimentAnalyzer interface {
	Analyze(message string) entity.SentimentResult
}
