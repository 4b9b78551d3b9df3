package usecase

import (
	"strings"

	"supportflow/internal/domain/entity"
)

var (
	positiveKeywords = []string{"gracias", "excelente", "genial", "perfecto", "ayuda"}
	negativeKeywords = []string{"problema", "error", "no funciona", "mal", "urgente"}
)

// KeywordSentiment classifies a message by counting which keywords of each
// list occur in it. Each keyword counts at most once.
type KeywordSentiment struct{}

func NewKeywordSentiment() *KeywordSentiment {
	return &KeywordSentiment{}
}

func (KeywordSentiment) Analyze(message string) entity.SentimentResult {
	lower := strings.ToLower(message)
	positive := countKeywords(lower, positiveKeywords)
	negative := countKeywords(lower, negativeKeywords)

	label := entity.SentimentNeutral
	switch {
	case positive > negative:
		label = entity.SentimentPositive
	case negative > positive:
		label = entity.SentimentNegative
	}

	return entity.SentimentResult{
		Sentiment: label,
		Score:     label.Score(),
		Message:   message,
	}
}

func countKeywords(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
