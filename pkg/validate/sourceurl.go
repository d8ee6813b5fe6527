// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"

	"knative.dev/pkg/apis"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
	"github.com/workspace7/pipeline-enricher/pkg/git"
)

// SourceURLRef contains all required fields
// to validate a BuildConfig source definition
type SourceURLRef struct {
	BuildConfig *buildv1.BuildConfig
}

// NewSourceURL instantiate SourceURLRef validation helper.
func NewSourceURL(bc *buildv1.BuildConfig) *SourceURLRef {
	return &SourceURLRef{bc}
}

// ValidatePath implements BuildConfigPath interface and validates that a
// Git source has a URI that points to a remote repository. An empty URI
// is left for the build server to fill in.
func (s SourceURLRef) ValidatePath(ctx context.Context) error {
	return asError(s.validate(ctx).ViaField("source").ViaField("spec"))
}

func (s SourceURLRef) validate(ctx context.Context) *apis.FieldError {
	source := s.BuildConfig.Spec.Source

	switch source.Type {
	case "", buildv1.BuildSourceNone:
		if source.Git != nil {
			return apis.ErrDisallowedFields("git")
		}
		return nil

	case buildv1.BuildSourceGit:
		if source.Git == nil {
			return apis.ErrMissingField("git")
		}

		if source.Git.URI == "" {
			ctxlog.Debug(ctx, "the Git source has no uri, nothing to do", "name", s.BuildConfig.Name)
			return nil
		}

		if err := git.ValidateSourceURL(source.Git.URI); err != nil {
			return apis.ErrInvalidValue(source.Git.URI, "git.uri", err.Error())
		}
		return nil

	default:
		return apis.ErrInvalidValue(source.Type, "type")
	}
}
