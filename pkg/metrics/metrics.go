package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	paintEstimator = "paint_estimator"

	estimatesTotal      = "estimates_total"
	priceSearchesTotal  = "price_searches_total"
	catalogProductCount = "catalog_products"

	// Labels
	modeLabel     = "mode"
	sourceLabel   = "source"
	outcomeLabel  = "outcome"
	categoryLabel = "category"
)

var estimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: paintEstimator,
		Name:      estimatesTotal,
		Help:      "number of room estimates computed, by input mode",
	},
	[]string{modeLabel},
)

var priceSearchesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: paintEstimator,
		Name:      priceSearchesTotal,
		Help:      "number of price lookups, by source (mock/upstream) and outcome",
	},
	[]string{sourceLabel, outcomeLabel},
)

var catalogProductsMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: paintEstimator,
		Name:      catalogProductCount,
		Help:      "number of paint products loaded into the catalog, by category",
	},
	[]string{categoryLabel},
)

func IncreaseEstimatesTotal(mode string) {
	estimatesTotalMetric.With(prometheus.Labels{modeLabel: mode}).Inc()
}

func IncreasePriceSearchesTotal(source, outcome string) {
	priceSearchesTotalMetric.With(prometheus.Labels{
		sourceLabel:  source,
		outcomeLabel: outcome,
	}).Inc()
}

func SetCatalogProducts(category string, count int) {
	catalogProductsMetric.With(prometheus.Labels{categoryLabel: category}).Set(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(estimatesTotalMetric)
	prometheus.MustRegister(priceSearchesTotalMetric)
	prometheus.MustRegister(catalogProductsMetric)
}
