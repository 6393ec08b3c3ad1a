package metrics

import (
	"context"
	"fmt"

	"github.com/moveplanner/estimator/internal/store/model"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type CatalogReader interface {
	Statistics(ctx context.Context) (model.CatalogStats, error)
}

type catalogStatsCollector struct {
	reader          CatalogReader
	totalBuildings  *prometheus.Desc
	totalHeavyItems *prometheus.Desc
	totalCrews      *prometheus.Desc
	totalBlackouts  *prometheus.Desc
}

func NewCatalogStatsCollector(reader CatalogReader) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_catalog_%s", moveEstimator, name)
	}

	return &catalogStatsCollector{
		reader: reader,
		totalBuildings: prometheus.NewDesc(
			fqName("buildings_total"),
			"Total number of buildings offered in the estimate form.",
			nil,
			prometheus.Labels{},
		),
		totalHeavyItems: prometheus.NewDesc(
			fqName("heavy_items_total"),
			"Total number of heavy items offered in the estimate form.",
			nil,
			prometheus.Labels{},
		),
		totalCrews: prometheus.NewDesc(
			fqName("crews_total"),
			"Total number of crews.",
			nil,
			prometheus.Labels{},
		),
		totalBlackouts: prometheus.NewDesc(
			fqName("blackouts_total"),
			"Total blackouts by meridian.",
			[]string{"meridian"},
			prometheus.Labels{},
		),
	}
}

// RegisterCatalogStatsCollector registers the catalog gauges on the default registry.
func RegisterCatalogStatsCollector(reader CatalogReader) {
	prometheus.MustRegister(NewCatalogStatsCollector(reader))
}

func (c *catalogStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalBuildings
	ch <- c.totalHeavyItems
	ch <- c.totalCrews
	ch <- c.totalBlackouts
}

// Collect implements Collector.
func (c *catalogStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.reader.Statistics(context.Background())
	if err != nil {
		zap.S().Named("catalog_collector").Errorf("failed to collect catalog statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalBuildings, prometheus.GaugeValue, float64(stats.Buildings))
	ch <- prometheus.MustNewConstMetric(c.totalHeavyItems, prometheus.GaugeValue, float64(stats.HeavyItems))
	ch <- prometheus.MustNewConstMetric(c.totalCrews, prometheus.GaugeValue, float64(stats.Crews))

	for meridian, total := range stats.BlackoutsByMeridian {
		ch <- prometheus.MustNewConstMetric(c.totalBlackouts, prometheus.GaugeValue, float64(total), string(meridian))
	}
}
