package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type BillingPrometheusMetrics struct {
	billingRunDurationHist *prometheus.HistogramVec
	clientsBilled          *prometheus.CounterVec
	billedAmount           prometheus.Counter
}

func newBillingPrometheusMetrics(reg prometheus.Registerer) *BillingPrometheusMetrics {
	mtc := &BillingPrometheusMetrics{
		billingRunDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qoda_billing_run_duration_seconds",
				Help:    "Duration of billing cycle runs in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"success"},
		),
		clientsBilled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qoda_billing_clients_total",
				Help: "Number of client billing pushes by outcome",
			},
			[]string{"outcome"},
		),
		billedAmount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "qoda_billing_amount_cents_total",
				Help: "Total rebilled amount in cents",
			},
		),
	}

	reg.MustRegister(mtc.billingRunDurationHist)
	reg.MustRegister(mtc.clientsBilled)
	reg.MustRegister(mtc.billedAmount)

	return mtc
}

func (m *BillingPrometheusMetrics) GenerateMetrics(startTime time.Time, processErr error) {
	if m == nil {
		return
	}

	m.billingRunDurationHist.WithLabelValues(strconv.FormatBool(processErr == nil)).
		Observe(time.Since(startTime).Seconds())
}

func (m *BillingPrometheusMetrics) RecordClient(outcome string, amountCents int64) {
	if m == nil {
		return
	}

	m.clientsBilled.WithLabelValues(outcome).Inc()
	if amountCents > 0 {
		m.billedAmount.Add(float64(amountCents))
	}
}
