package entity

// FixedConfidence is reported on every chat reply, whichever path produced it.
const FixedConfidence = 0.85

type SupportRequest struct {
	Message string         `json:"message" validate:"required"`
	Context map[string]any `json:"context"`

	// UseAlternateModel is accepted for compatibility; there is only one remote path.
	UseAlternateModel bool `json:"useAlternateModel"`
}

type SupportResponse struct {
	Reply      string  `json:"reply"`
	Confidence float64 `json:"confidence"`
	ModelUsed  string  `json:"modelUsed"`
	Timestamp  string  `json:"timestamp"` // RFC 3339
}

type HealthStatus struct {
	Status              string `json:"status"`
	CerebrasAvailable   bool   `json:"cerebrasAvailable"`
	LocalModelAvailable bool   `json:"localModelAvailable"`
}
