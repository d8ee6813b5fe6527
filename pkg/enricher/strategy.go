// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

// JenkinsfileName is the pipeline definition a project needs to get a
// BuildConfig
const JenkinsfileName = "Jenkinsfile"

// BuildTriggers returns the GitHub and the Generic webhook trigger, in
// this order, even if the secrets are empty
func BuildTriggers(githubSecret string, genericSecret string) []buildv1.BuildTriggerPolicy {
	return []buildv1.BuildTriggerPolicy{
		{
			Type:          buildv1.GitHubWebHookBuildTriggerType,
			GitHubWebHook: &buildv1.WebHookTrigger{Secret: githubSecret},
		},
		{
			Type:           buildv1.GenericWebHookBuildTriggerType,
			GenericWebHook: &buildv1.WebHookTrigger{Secret: genericSecret},
		},
	}
}

// JenkinsPipelineStrategy returns the strategy running the Jenkinsfile in
// the root of the source
func JenkinsPipelineStrategy() buildv1.BuildStrategy {
	return buildv1.BuildStrategy{
		Type: buildv1.JenkinsPipelineBuildStrategyType,
		JenkinsPipelineStrategy: &buildv1.JenkinsPipelineBuildStrategy{
			JenkinsfilePath: JenkinsfileName,
		},
	}
}
