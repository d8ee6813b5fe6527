// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package validate contains structural checks of generated BuildConfigs.
// The checks are local, no cluster is contacted.
package validate

import (
	"context"
	"fmt"

	kerrors "k8s.io/apimachinery/pkg/util/errors"
	"knative.dev/pkg/apis"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

const (
	// BuildConfigName for validating `metadata.name` and the build label
	BuildConfigName = "buildconfigname"
	// Triggers for validating `spec.triggers` entries
	Triggers = "triggers"
	// SourceURL for validating the Git URI in `spec.source`
	SourceURL = "sourceurl"
	// Strategy for validating `spec.strategy`
	Strategy = "strategy"
)

// BuildConfigPath is an interface that holds a ValidatePath() function
// for validating different BuildConfig spec paths
type BuildConfigPath interface {
	ValidatePath(ctx context.Context) error
}

// NewValidation returns a specific structure that implements
// BuildConfigPath interface
func NewValidation(validationType string, bc *buildv1.BuildConfig) (BuildConfigPath, error) {
	switch validationType {
	case BuildConfigName:
		return &BuildConfigNameRef{BuildConfig: bc}, nil
	case Triggers:
		return NewTriggers(bc), nil
	case SourceURL:
		return NewSourceURL(bc), nil
	case Strategy:
		return NewStrategy(bc), nil
	default:
		return nil, fmt.Errorf("unknown validation type")
	}
}

// All runs all given validations and returns the errors of all of them
func All(ctx context.Context, validations ...BuildConfigPath) error {
	var errs []error
	for _, validation := range validations {
		if err := validation.ValidatePath(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return kerrors.NewAggregate(errs)
}

// BuildConfig runs every validation against the BuildConfig
func BuildConfig(ctx context.Context, bc *buildv1.BuildConfig) error {
	var validations []BuildConfigPath
	for _, validationType := range []string{BuildConfigName, Triggers, SourceURL, Strategy} {
		validation, err := NewValidation(validationType, bc)
		if err != nil {
			return err
		}
		validations = append(validations, validation)
	}

	if err := All(ctx, validations...); err != nil {
		return fmt.Errorf("BuildConfig %q is invalid: %w", bc.Name, err)
	}
	return nil
}

// asError avoids returning a typed nil
func asError(fe *apis.FieldError) error {
	if fe == nil {
		return nil
	}
	return fe
}
