// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	"context"
	"fmt"

	kerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
	"github.com/workspace7/pipeline-enricher/pkg/resources"
)

// Run runs the named enrichers in order against the list. A failing
// enricher does not stop the others, all errors are returned together.
func Run(ctx context.Context, ectx *Context, registry *Registry, names []string, list *resources.ListBuilder) error {
	enrichers := make([]Enricher, 0, len(names))
	for _, name := range names {
		factory, ok := registry.Get(name)
		if !ok {
			return fmt.Errorf("unknown enricher %q, available are %v", name, registry.List())
		}
		enrichers = append(enrichers, factory(ectx))
	}

	var errs []error
	for _, e := range enrichers {
		enricherCtx := ctxlog.NewContext(ctx, e.Name())
		if err := e.AddMissingResources(enricherCtx, list); err != nil {
			ctxlog.Error(enricherCtx, err, "enricher failed")
			errs = append(errs, fmt.Errorf("enricher %s: %w", e.Name(), err))
		}
	}

	return kerrors.NewAggregate(errs)
}
