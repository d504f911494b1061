package metrics

import (
	"service-storefront/internal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RatesMetrics exports the health of rate reconciliation.
type RatesMetrics struct {
	CyclesTotal           *prometheus.CounterVec
	ProviderFailuresTotal *prometheus.CounterVec
	BestRate              *prometheus.GaugeVec
	LastUpdateSeconds     prometheus.Gauge
}

func NewRatesMetrics(reg prometheus.Registerer) *RatesMetrics {
	f := promauto.With(reg)
	return &RatesMetrics{
		CyclesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rates_reconcile_cycles_total",
				Help: "Reconciliation cycles by result",
			},
			[]string{"result"},
		),
		ProviderFailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rates_provider_failures_total",
				Help: "Failed fetches per rate provider",
			},
			[]string{"source"},
		),
		BestRate: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rates_best_rate_to_base",
				Help: "Currently cached rate to the base currency",
			},
			[]string{"currency"},
		),
		LastUpdateSeconds: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "rates_last_update_timestamp_seconds",
				Help: "Unix time of the last cache update",
			},
		),
	}
}

func (m *RatesMetrics) ObserveProviderFailure(source internal.RateSource) {
	m.ProviderFailuresTotal.WithLabelValues(string(source)).Inc()
}

func (m *RatesMetrics) ObserveCycle(r internal.ReconcileResult) {
	result := "ok"
	if !r.OK {
		result = "degraded"
	}
	m.CyclesTotal.WithLabelValues(result).Inc()

	for ccy, rate := range r.Rates {
		m.BestRate.WithLabelValues(ccy.String()).Set(rate.InexactFloat64())
	}
	if !r.UpdatedAt.IsZero() {
		m.LastUpdateSeconds.Set(float64(r.UpdatedAt.Unix()))
	}
}
