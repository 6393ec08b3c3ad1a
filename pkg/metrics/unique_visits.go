package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type uniqueVisits struct {
	counter       prometheus.Gauge
	visitorsCache map[string]struct{}
	mu            sync.RWMutex
}

// Visits
const estimateVisitorsPerWeek = "estimate_visitors_per_week"

var totalUniqueVisitorsPerWeekMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: moveEstimator,
		Name:      estimateVisitorsPerWeek,
		Help:      "number of distinct clients submitting an estimate request per week",
	},
)

// UniqueEstimateVisitorsPerWeek counts the distinct clients validating an
// estimate. The metrics server resets it every week.
var UniqueEstimateVisitorsPerWeek = &uniqueVisits{
	counter:       totalUniqueVisitorsPerWeekMetric,
	visitorsCache: make(map[string]struct{}),
}

func (v *uniqueVisits) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.visitorsCache = make(map[string]struct{})
	v.counter.Set(0)
}

func (v *uniqueVisits) Visit(visitor string) {
	if visitor == "" {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.visitorsCache[visitor]; exists {
		return
	}

	v.visitorsCache[visitor] = struct{}{}
	v.counter.Inc()
}

func (v *uniqueVisits) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.visitorsCache)
}
