package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
)

const (
	StrategyPDF        = "pdf"
	StrategyPlain      = "plain"
	StrategyUnreadable = "unreadable"
)

var (
	extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume_analyzer",
		Name:      "extractions_total",
		Help:      "Document text extractions by the strategy that produced the text.",
	}, []string{"strategy"})

	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume_analyzer",
		Name:      "analyses_total",
		Help:      "Completed analyses by outcome kind.",
	}, []string{"outcome"})
)

func recordExtraction(strategy string) {
	extractionsTotal.WithLabelValues(strategy).Inc()
}

func recordOutcome(kind models.OutcomeKind) {
	analysesTotal.WithLabelValues(string(kind)).Inc()
}
