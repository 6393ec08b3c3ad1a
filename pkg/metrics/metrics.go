package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	moveEstimator = "move_estimator"

	// Form metrics
	formValidationsTotal = "form_validations_total"

	// Catalog metrics
	blackoutLoadsTotal = "blackout_loads_total"

	// Labels
	formLabel   = "form"
	resultLabel = "result"
	stateLabel  = "state"
)

const (
	ResultPassed = "passed"
	ResultFailed = "failed"
	ResultError  = "error"

	StateSuccessful = "successful"
	StateFailed     = "failed"
)

var formValidationsTotalLabels = []string{
	formLabel,
	resultLabel,
}

var blackoutLoadsTotalLabels = []string{
	stateLabel,
}

/**
* Metrics definition
**/
var formValidationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: moveEstimator,
		Name:      formValidationsTotal,
		Help:      "number of form validations partitioned by form and result",
	},
	formValidationsTotalLabels,
)

var blackoutLoadsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: moveEstimator,
		Name:      blackoutLoadsTotal,
		Help:      "number of blackout calendar loads",
	},
	blackoutLoadsTotalLabels,
)

func IncreaseFormValidationsTotalMetric(form, result string) {
	labels := prometheus.Labels{
		formLabel:   form,
		resultLabel: result,
	}
	formValidationsTotalMetric.With(labels).Inc()
}

func IncreaseBlackoutLoadsTotalMetric(state string) {
	labels := prometheus.Labels{
		stateLabel: state,
	}
	blackoutLoadsTotalMetric.With(labels).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(formValidationsTotalMetric)
	prometheus.MustRegister(blackoutLoadsTotalMetric)
	prometheus.MustRegister(totalUniqueVisitorsPerWeekMetric)
}
