package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/svnhec/qoda-sub003/internal/models"
)

type SettlementPrometheusMetrics struct {
	settlementsProcessed *prometheus.CounterVec
	settlementVolume     *prometheus.CounterVec
	markupRevenue        prometheus.Counter
}

func newSettlementPrometheusMetrics(reg prometheus.Registerer) *SettlementPrometheusMetrics {
	mtc := &SettlementPrometheusMetrics{
		settlementsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qoda_settlements_processed_total",
				Help: "Number of settlement events processed by outcome",
			},
			[]string{"outcome"},
		),
		settlementVolume: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qoda_settlement_volume_cents_total",
				Help: "Settled spend volume in cents by organization",
			},
			[]string{"organization_id"},
		),
		markupRevenue: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "qoda_markup_revenue_cents_total",
				Help: "Markup revenue recognized in cents",
			},
		),
	}

	reg.MustRegister(mtc.settlementsProcessed)
	reg.MustRegister(mtc.settlementVolume)
	reg.MustRegister(mtc.markupRevenue)

	return mtc
}

func (m *SettlementPrometheusMetrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}

	m.settlementsProcessed.WithLabelValues(outcome).Inc()
}

func (m *SettlementPrometheusMetrics) RecordSettlement(organizationID string, spend, markup models.Money) {
	if m == nil {
		return
	}

	m.settlementVolume.WithLabelValues(organizationID).Add(float64(spend.Cents()))
	m.markupRevenue.Add(float64(markup.Cents()))
}
