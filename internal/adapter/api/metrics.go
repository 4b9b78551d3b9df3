package api

import (
	"supportflow/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry    *prometheus.Registry
	chatReplies *prometheus.CounterVec
	sentiments  *prometheus.CounterVec
}

// NewMetrics uses its own registry so several apps (tests) can coexist in
// one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supportflow",
			Name:      "chat_replies_total",
			Help:      "Chat replies served, by the path that produced them.",
		}, []string{"model_used"}),
		sentiments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supportflow",
			Name:      "sentiment_results_total",
			Help:      "Sentiment classifications, by label.",
		}, []string{"sentiment"}),
	}
	reg.MustRegister(
		m.chatReplies,
		m.sentiments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveChat(modelUsed string) {
	m.chatReplies.WithLabelValues(modelUsed).Inc()
}

func (m *Metrics) ObserveSentiment(s entity.Sentiment) {
	m.sentiments.WithLabelValues(string(s)).Inc()
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
