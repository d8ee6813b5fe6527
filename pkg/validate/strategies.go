// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"
	"path"

	"knative.dev/pkg/apis"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

const (
	jenkinsfilePathField = "jenkinsPipelineStrategy.jenkinsfilePath"
	jenkinsfileField     = "jenkinsPipelineStrategy.jenkinsfile"
)

// StrategyRef contains all required fields
// to validate a BuildConfig strategy definition
type StrategyRef struct {
	BuildConfig *buildv1.BuildConfig
}

// NewStrategy instantiate StrategyRef validation helper.
func NewStrategy(bc *buildv1.BuildConfig) *StrategyRef {
	return &StrategyRef{bc}
}

// ValidatePath implements BuildConfigPath interface and validates that the
// strategy is a Jenkins pipeline with either a relative Jenkinsfile path
// or inline Jenkinsfile contents
func (s StrategyRef) ValidatePath(_ context.Context) error {
	return asError(s.validate().ViaField("strategy").ViaField("spec"))
}

func (s StrategyRef) validate() *apis.FieldError {
	strategy := s.BuildConfig.Spec.Strategy

	if strategy.Type != buildv1.JenkinsPipelineBuildStrategyType {
		return apis.ErrInvalidValue(strategy.Type, "type", "only JenkinsPipeline is supported")
	}

	pipeline := strategy.JenkinsPipelineStrategy
	switch {
	case pipeline == nil:
		return apis.ErrMissingField("jenkinsPipelineStrategy")

	case pipeline.JenkinsfilePath != "" && pipeline.Jenkinsfile != "":
		return apis.ErrMultipleOneOf(jenkinsfilePathField, jenkinsfileField)

	case pipeline.JenkinsfilePath == "" && pipeline.Jenkinsfile == "":
		return apis.ErrMissingOneOf(jenkinsfilePathField, jenkinsfileField)

	case path.IsAbs(pipeline.JenkinsfilePath):
		return apis.ErrInvalidValue(pipeline.JenkinsfilePath, jenkinsfilePathField, "must be relative to the source")
	}

	return nil
}
