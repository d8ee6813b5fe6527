// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package enricher contains the enrichers that add generated resources to
// the resource list of a project, together with the registry they are
// looked up in.
package enricher

import (
	"context"

	"github.com/workspace7/pipeline-enricher/pkg/config"
	"github.com/workspace7/pipeline-enricher/pkg/project"
	"github.com/workspace7/pipeline-enricher/pkg/resources"
)

// Enricher adds the resources it is responsible for to a resource list
type Enricher interface {
	// Name is the name the enricher is registered and configured under
	Name() string

	// AddMissingResources appends the resources of the enricher to the
	// list. Existing entries of the list are left untouched.
	AddMissingResources(ctx context.Context, list *resources.ListBuilder) error
}

// Context is what every enricher of a run gets to work with
type Context struct {
	Project *project.Project
	Config  *config.Config
}

// Factory creates an enricher for the given context
type Factory func(ectx *Context) Enricher
