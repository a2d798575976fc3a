package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by calculation events.
type Metrics struct {
	Calculations *prometheus.CounterVec
	Duration     prometheus.Histogram
	Tokens       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Passing nil registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strcalc_calculations_total",
				Help: "Total number of calculations by outcome",
			},
			[]string{"outcome", "cached"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "strcalc_calculation_duration_seconds",
				Help:    "Duration of calculations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		Tokens: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "strcalc_tokens_per_calculation",
				Help:    "Number of tokens split from each input",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.Calculations, m.Duration, m.Tokens} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record every calculation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(ctx context.Context, e *domain.CalculationEvent) {
			m.Calculations.WithLabelValues(e.Outcome(), strconv.FormatBool(e.Cached)).Inc()
			m.Duration.Observe(e.Duration.Seconds())
			if !e.Cached {
				m.Tokens.Observe(float64(e.Tokens))
			}
		},
	}
}
