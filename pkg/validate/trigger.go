// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"

	"knative.dev/pkg/apis"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

// TriggersRef implements the interface BuildConfigPath with the objective of applying validations
// against the `.spec.triggers` related attributes.
type TriggersRef struct {
	buildConfig *buildv1.BuildConfig
}

// validate goes through the triggers to validate each entry.
func (t *TriggersRef) validate(triggers []buildv1.BuildTriggerPolicy) *apis.FieldError {
	var errs *apis.FieldError
	for i, trigger := range triggers {
		var triggerErrs *apis.FieldError

		switch trigger.Type {
		case buildv1.GitHubWebHookBuildTriggerType:
			if trigger.GitHubWebHook == nil {
				triggerErrs = triggerErrs.Also(apis.ErrMissingField("github"))
			}
			if trigger.GenericWebHook != nil {
				triggerErrs = triggerErrs.Also(apis.ErrDisallowedFields("generic"))
			}

		case buildv1.GenericWebHookBuildTriggerType:
			if trigger.GenericWebHook == nil {
				triggerErrs = triggerErrs.Also(apis.ErrMissingField("generic"))
			}
			if trigger.GitHubWebHook != nil {
				triggerErrs = triggerErrs.Also(apis.ErrDisallowedFields("github"))
			}

		default:
			triggerErrs = apis.ErrInvalidValue(trigger.Type, "type")
		}

		errs = errs.Also(triggerErrs.ViaIndex(i))
	}
	return errs.ViaField("triggers").ViaField("spec")
}

// ValidatePath validates the `.spec.triggers` path.
func (t *TriggersRef) ValidatePath(_ context.Context) error {
	return asError(t.validate(t.buildConfig.Spec.Triggers))
}

// NewTriggers instantiate TriggersRef validation helper.
func NewTriggers(bc *buildv1.BuildConfig) *TriggersRef {
	return &TriggersRef{buildConfig: bc}
}
