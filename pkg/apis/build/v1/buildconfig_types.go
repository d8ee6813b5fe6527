// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BuildRunPolicy defines the behaviour of how the new builds are executed
// from the existing build configuration.
type BuildRunPolicy string

const (
	// BuildRunPolicyParallel schedules new builds immediately after they are
	// created. Builds will be executed in parallel.
	BuildRunPolicyParallel BuildRunPolicy = "Parallel"

	// BuildRunPolicySerial schedules new builds to execute in a sequence as
	// they are created. Every build gets queued up and will execute when the
	// previous build completes.
	BuildRunPolicySerial BuildRunPolicy = "Serial"

	// BuildRunPolicySerialLatestOnly schedules only the latest build to execute,
	// cancelling all the previously queued build.
	BuildRunPolicySerialLatestOnly BuildRunPolicy = "SerialLatestOnly"
)

// BuildSourceType enumerates build source type names.
type BuildSourceType string

const (
	// BuildSourceGit instructs a build to use a Git source control repository as the build input.
	BuildSourceGit BuildSourceType = "Git"

	// BuildSourceNone indicates the build has no predefined input
	BuildSourceNone BuildSourceType = "None"
)

// BuildStrategyType describes a particular way of performing a build.
type BuildStrategyType string

const (
	// JenkinsPipelineBuildStrategyType indicates the build will run via Jenkins Pipeline.
	JenkinsPipelineBuildStrategyType BuildStrategyType = "JenkinsPipeline"
)

// BuildTriggerType refers to a specific BuildTriggerPolicy implementation.
type BuildTriggerType string

const (
	// GitHubWebHookBuildTriggerType represents a trigger that launches builds on
	// GitHub webhook invocations
	GitHubWebHookBuildTriggerType BuildTriggerType = "GitHub"

	// GenericWebHookBuildTriggerType represents a trigger that launches builds on
	// generic webhook invocations
	GenericWebHookBuildTriggerType BuildTriggerType = "Generic"
)

// BuildConfig is a template which can be used to create new builds.
//
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type BuildConfig struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Spec holds all the input necessary to produce a new build, and the conditions when
	// to trigger them.
	Spec BuildConfigSpec `json:"spec"`

	// Status holds any relevant information about a build config, it is
	// only set by the cluster
	//
	// +optional
	Status *BuildConfigStatus `json:"status,omitempty"`
}

// BuildConfigSpec describes when and how builds are created
type BuildConfigSpec struct {
	// Triggers determine how new Builds can be launched from a BuildConfig.
	//
	// +optional
	Triggers []BuildTriggerPolicy `json:"triggers,omitempty"`

	// RunPolicy describes how the new build created from this build
	// configuration will be scheduled for execution.
	RunPolicy BuildRunPolicy `json:"runPolicy,omitempty"`

	// CommonSpec is the desired build specification
	CommonSpec `json:",inline"`
}

// CommonSpec encapsulates the inputs needed to produce a new build.
type CommonSpec struct {
	// Source describes the SCM in use.
	Source BuildSource `json:"source,omitempty"`

	// Strategy defines how to perform a build.
	Strategy BuildStrategy `json:"strategy"`
}

// BuildSource is the SCM used for the build.
type BuildSource struct {
	// Type of build input to accept
	//
	// +optional
	Type BuildSourceType `json:"type,omitempty"`

	// Git contains optional information about git build source
	//
	// +optional
	Git *GitBuildSource `json:"git,omitempty"`
}

// GitBuildSource defines the parameters of a Git SCM
type GitBuildSource struct {
	// URI points to the source that will be built.
	URI string `json:"uri"`

	// Ref is the branch/tag/ref to build.
	Ref string `json:"ref,omitempty"`
}

// BuildStrategy contains the details of how to perform a build.
type BuildStrategy struct {
	// Type is the kind of build strategy.
	Type BuildStrategyType `json:"type,omitempty"`

	// JenkinsPipelineStrategy holds the parameters to the Jenkins Pipeline build strategy.
	//
	// +optional
	JenkinsPipelineStrategy *JenkinsPipelineBuildStrategy `json:"jenkinsPipelineStrategy,omitempty"`
}

// JenkinsPipelineBuildStrategy holds parameters specific to a Jenkins Pipeline build.
type JenkinsPipelineBuildStrategy struct {
	// JenkinsfilePath is the optional path of the Jenkinsfile that will be used to configure the pipeline
	// relative to the root of the context (contextDir).
	JenkinsfilePath string `json:"jenkinsfilePath,omitempty"`

	// Jenkinsfile defines the optional raw contents of a Jenkinsfile which defines a Jenkins pipeline build.
	Jenkinsfile string `json:"jenkinsfile,omitempty"`
}

// BuildTriggerPolicy describes a policy for a single trigger that results in a new Build.
type BuildTriggerPolicy struct {
	// Type is the type of build trigger.
	Type BuildTriggerType `json:"type"`

	// GitHubWebHook contains the parameters for a GitHub webhook type of trigger
	GitHubWebHook *WebHookTrigger `json:"github,omitempty"`

	// GenericWebHook contains the parameters for a Generic webhook type of trigger
	GenericWebHook *WebHookTrigger `json:"generic,omitempty"`
}

// WebHookTrigger is a trigger that gets invoked using a webhook type of post
type WebHookTrigger struct {
	// Secret used to validate requests.
	Secret string `json:"secret,omitempty"`
}

// BuildConfigStatus contains current state of the build config object.
type BuildConfigStatus struct {
	// LastVersion is used to inform about number of last triggered build.
	LastVersion int64 `json:"lastVersion"`
}

// BuildConfigList is a collection of BuildConfigs.
//
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type BuildConfigList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	// Items is a list of build configs
	Items []BuildConfig `json:"items"`
}

// Secret returns the secret of the webhook block that matches the trigger type.
func (p *BuildTriggerPolicy) Secret() string {
	var hook *WebHookTrigger
	switch p.Type {
	case GitHubWebHookBuildTriggerType:
		hook = p.GitHubWebHook
	case GenericWebHookBuildTriggerType:
		hook = p.GenericWebHook
	}

	if hook == nil {
		return ""
	}
	return hook.Secret
}
