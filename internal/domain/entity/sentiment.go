package entity

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Score returns the fixed score attached to each label.
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 0.7
	case SentimentNegative:
		return 0.3
	default:
		return 0.5
	}
}

type AnalyzeRequest struct {
	Message string `json:"message" validate:"required"`
}

type SentimentResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`
	Message   string    `json:"message"`
}
