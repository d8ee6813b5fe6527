// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	enricherLabel string = "enricher"
	reasonLabel   string = "reason"

	addedMetricName   = "enricher_buildconfigs_added_total"
	skippedMetricName = "enricher_buildconfigs_skipped_total"
)

// Reasons for an enricher not to add a BuildConfig
const (
	SkipReasonDisabled       = "disabled"
	SkipReasonNoPipelineFile = "no-pipeline-file"
)

var (
	buildConfigAddedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: addedMetricName,
			Help: "Number of BuildConfigs added to the resource list.",
		},
		[]string{enricherLabel})

	buildConfigSkippedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: skippedMetricName,
			Help: "Number of enricher runs that did not add a BuildConfig.",
		},
		[]string{enricherLabel, reasonLabel})

	initialized = false
)

// InitPrometheus registers the enricher metrics with the controller-runtime
// metrics registry
func InitPrometheus() {
	if initialized {
		return
	}

	initialized = true

	metrics.Registry.MustRegister(
		buildConfigAddedCount,
		buildConfigSkippedCount)
}

// BuildConfigAddedInc increases the number of BuildConfigs added by the enricher
func BuildConfigAddedInc(enricher string) {
	buildConfigAddedCount.WithLabelValues(enricher).Inc()
}

// BuildConfigSkippedInc increases the number of runs of the enricher that
// did not add a BuildConfig for the given reason
func BuildConfigSkippedInc(enricher string, reason string) {
	buildConfigSkippedCount.WithLabelValues(enricher, reason).Inc()
}
