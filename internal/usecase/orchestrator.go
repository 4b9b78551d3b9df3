package usecase

import (
	"context"
	"time"

	"supportflow/internal/domain/entity"
	"supportflow/internal/domain/repository"

	"go.uber.org/zap"
)

const (
	LabelFallbackUnconfigured = "Fallback (API no configurada)"
	LabelFallbackError        = "Fallback (error de API)"
)

type Orchestrator struct {
	inference repository.InferenceClient
	fallback  repository.FallbackResponder
	log       *zap.Logger
	now       func() time.Time
}

func NewOrchestrator(inf repository.InferenceClient, fb repository.FallbackResponder, log *zap.Logger) *Orchestrator {
	return &Orchestrator{inference: inf, fallback: fb, log: log, now: time.Now}
}

// Execute never fails: an unconfigured or failing inference client degrades
// to a canned reply. req.Context and req.UseAlternateModel are not consulted.
func (u *Orchestrator) Execute(ctx context.Context, req entity.SupportRequest) *entity.SupportResponse {
	reply, label := u.generate(ctx, req.Message)

	return &entity.SupportResponse{
		Reply:      reply,
		Confidence: entity.FixedConfidence,
		ModelUsed:  label,
		Timestamp:  u.now().Format(time.RFC3339Nano),
	}
}

func (u *Orchestrator) generate(ctx context.Context, message string) (string, string) {
	if !u.inference.Available() {
		return u.fallback.Respond(message), LabelFallbackUnconfigured
	}

	reply, err := u.inference.Generate(ctx, message)
	if err != nil {
		u.log.Warn("inference failed, using fallback reply",
			zap.String("model", u.inference.Label()),
			zap.Error(err),
		)
		return u.fallback.Respond(message), LabelFallbackError
	}
	return reply, u.inference.Label()
}

// InferenceAvailable reports the startup flag exposed by /health.
func (u *Orchestrator) InferenceAvailable() bool {
	return u.inference.Available()
}
