// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"k8s.io/apimachinery/pkg/api/meta"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

// PrintTable prints a compact overview of the accumulated resources
func (b *ListBuilder) PrintTable(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.MiddleHorizontal = "─"

	t.AppendHeader(table.Row{"KIND", "NAME", "RUN POLICY", "TRIGGERS", "SOURCE"})

	for _, item := range b.items {
		obj, err := withKind(item)
		if err != nil {
			return err
		}

		name := "?"
		if accessor, err := meta.Accessor(obj); err == nil {
			name = accessor.GetName()
		}

		runPolicy, triggers, source := "", "", ""
		if bc, ok := item.(*buildv1.BuildConfig); ok {
			runPolicy = string(bc.Spec.RunPolicy)
			triggers = triggerTypes(bc.Spec.Triggers)
			source = sourceSummary(bc.Spec.Source)
		}

		t.AppendRow(table.Row{
			obj.GetObjectKind().GroupVersionKind().Kind,
			name,
			runPolicy,
			triggers,
			source,
		})
	}

	t.AppendSeparator()
	t.AppendRow(table.Row{"", fmt.Sprintf("%d resources in total", len(b.items))})
	t.Render()

	return nil
}

func triggerTypes(triggers []buildv1.BuildTriggerPolicy) string {
	types := make([]string, 0, len(triggers))
	for _, trigger := range triggers {
		types = append(types, string(trigger.Type))
	}
	return strings.Join(types, ",")
}

func sourceSummary(source buildv1.BuildSource) string {
	if source.Git == nil {
		return string(source.Type)
	}

	if source.Git.Ref == "" {
		return source.Git.URI
	}
	return source.Git.URI + "@" + source.Git.Ref
}
