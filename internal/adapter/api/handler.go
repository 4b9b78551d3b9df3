package api

import (
	"supportflow/internal/domain/entity"
	"supportflow/internal/domain/repository"
	"supportflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SupportHandler struct {
	orchestrator *usecase.Orchestrator
	sentiment    repository.SentimentAnalyzer
	validate     *Validator
	metrics      *Metrics
	version      string
}

func NewSupportHandler(orch *usecase.Orchestrator, sa repository.SentimentAnalyzer, m *Metrics, version string) *SupportHandler {
	return &SupportHandler{
		orchestrator: orch,
		sentiment:    sa,
		validate:     NewValidator(),
		metrics:      m,
		version:      version,
	}
}

func (h *SupportHandler) HandleChat(c *fiber.Ctx) error {
	var req entity.SupportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	// Inference failures are absorbed by the orchestrator; this is always a 200.
	resp := h.orchestrator.Execute(c.UserContext(), req)
	h.metrics.ObserveChat(resp.ModelUsed)

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *SupportHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req entity.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result := h.sentiment.Analyze(req.Message)
	h.metrics.ObserveSentiment(result.Sentiment)

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SupportHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(entity.HealthStatus{
		Status:              "healthy",
		CerebrasAvailable:   h.orchestrator.InferenceAvailable(),
		LocalModelAvailable: false,
	})
}

func (h *SupportHandler) HandleAPIInfo(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.apiInfo())
}

func (h *SupportHandler) apiInfo() fiber.Map {
	return fiber.Map{
		"message": "SupportFlow API",
		"version": h.version,
		"endpoints": fiber.Map{
			"health":  "/health",
			"chat":    "/chat",
			"analyze": "/analyze",
		},
	}
}
