package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes application-level instruments on the /metrics endpoint.
type Metrics struct {
	documentsGenerated *prometheus.CounterVec
	documentFailures   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		documentsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "megabooks_documents_generated_total",
			Help: "Documents generated, by kind.",
		}, []string{"kind"}),
		documentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "megabooks_document_failures_total",
			Help: "Document generation failures, by kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) RecordDocumentGenerated(kind string) {
	if m == nil {
		return
	}
	m.documentsGenerated.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordDocumentFailure(kind string) {
	if m == nil {
		return
	}
	m.documentFailures.WithLabelValues(kind).Inc()
}
