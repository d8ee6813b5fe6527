// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// EnricherSummary holds the counters of a single enricher
type EnricherSummary struct {
	Enricher string
	Added    int
	Skipped  map[string]int
}

// Summarize collects the enricher counters from the controller-runtime
// metrics registry, sorted by enricher name
func Summarize() ([]EnricherSummary, error) {
	return summarize(metrics.Registry)
}

func summarize(gatherer prometheus.Gatherer) ([]EnricherSummary, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	byEnricher := map[string]*EnricherSummary{}
	get := func(name string) *EnricherSummary {
		s, ok := byEnricher[name]
		if !ok {
			s = &EnricherSummary{Enricher: name, Skipped: map[string]int{}}
			byEnricher[name] = s
		}
		return s
	}

	for _, family := range families {
		switch family.GetName() {
		case addedMetricName:
			for _, m := range family.GetMetric() {
				get(labelValue(m, enricherLabel)).Added += counterValue(m)
			}

		case skippedMetricName:
			for _, m := range family.GetMetric() {
				get(labelValue(m, enricherLabel)).Skipped[labelValue(m, reasonLabel)] += counterValue(m)
			}
		}
	}

	result := make([]EnricherSummary, 0, len(byEnricher))
	for _, s := range byEnricher {
		result = append(result, *s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Enricher < result[j].Enricher
	})

	return result, nil
}

// PrintSummary prints one line per enricher with its counters
func PrintSummary(w io.Writer, summaries []EnricherSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ENRICHER", "ADDED", "DISABLED", "NO PIPELINE FILE"})

	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Enricher,
			s.Added,
			s.Skipped[SkipReasonDisabled],
			s.Skipped[SkipReasonNoPipelineFile],
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.MiddleHorizontal = "─"
	t.Render()
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}

func counterValue(m *dto.Metric) int {
	return int(m.GetCounter().GetValue())
}
