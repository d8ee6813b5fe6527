// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
	"knative.dev/pkg/apis"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

const buildLabel = "build"

// BuildConfigNameRef contains all required fields
// to validate a BuildConfig name
type BuildConfigNameRef struct {
	BuildConfig *buildv1.BuildConfig // build config instance for analysis
}

// ValidatePath implements BuildConfigPath interface and validates that
// the name is a valid DNS-1123 label as well as a valid label value, and
// that the build label carries it
func (b *BuildConfigNameRef) ValidatePath(_ context.Context) error {
	var errs *apis.FieldError
	name := b.BuildConfig.Name

	msgs := validation.IsDNS1123Label(name)
	msgs = append(msgs, validation.IsValidLabelValue(name)...)
	if len(msgs) > 0 {
		errs = errs.Also(apis.ErrInvalidValue(name, "name", strings.Join(msgs, ", ")))
	}

	value, ok := b.BuildConfig.Labels[buildLabel]
	switch {
	case !ok:
		errs = errs.Also(apis.ErrMissingField("labels." + buildLabel))

	case value != name:
		errs = errs.Also(apis.ErrInvalidValue(value, "labels."+buildLabel, "must match the name"))
	}

	return asError(errs.ViaField("metadata"))
}
