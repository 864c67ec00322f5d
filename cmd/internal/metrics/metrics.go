package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeCatalogError = "catalog_error"
)

// Registry - метрики расчета котировок на отдельном prometheus.Registry.
type Registry struct {
	reg *prometheus.Registry

	QuotesCalculated *prometheus.CounterVec
	Duration         prometheus.Histogram
	CatalogRows      prometheus.Histogram
	UnsourcedItems   *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	calculated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_calculated_total",
		Help: "Quote calculations by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_calculation_duration_seconds",
		Help:    "Catalog fetch plus engine evaluation time.",
		Buckets: prometheus.DefBuckets,
	})
	catalogRows := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_catalog_rows",
		Help:    "Price quotations loaded per calculation.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
	unsourced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_plan_unsourced_items_total",
		Help: "Requested items left out of a plan.",
	}, []string{"strategy"})

	r.MustRegister(
		calculated, duration, catalogRows, unsourced,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:              r,
		QuotesCalculated: calculated,
		Duration:         duration,
		CatalogRows:      catalogRows,
		UnsourcedItems:   unsourced,
	}
}

// ObserveCalculation фиксирует исход и длительность одного расчета.
// nil-реестр допустим: метрики тогда не пишутся.
func (r *Registry) ObserveCalculation(outcome string, started time.Time) {
	if r == nil {
		return
	}
	r.QuotesCalculated.WithLabelValues(outcome).Inc()
	r.Duration.Observe(time.Since(started).Seconds())
}

func (r *Registry) ObserveCatalogRows(n int) {
	if r == nil {
		return
	}
	r.CatalogRows.Observe(float64(n))
}

func (r *Registry) AddUnsourced(strategy string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.UnsourcedItems.WithLabelValues(strategy).Add(float64(n))
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
