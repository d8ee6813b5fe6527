// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	"k8s.io/utils/ptr"

	"github.com/workspace7/pipeline-enricher/pkg/config"
)

// Option names of the BuildConfig enrichers
const (
	EnabledOption             = "enabled"
	GitHubWebHookSecretOption = "githubWebHookSecret"
	GenericSecretOption       = "genericSecret"
	GitSourceURIOption        = "gitSourceUri"
	GitSourceRefOption        = "gitSourceRef"
)

func buildConfigKeys() config.Keys {
	return config.Keys{
		EnabledOption:             ptr.To("yes"),
		GitHubWebHookSecretOption: ptr.To(""),
		GenericSecretOption:       ptr.To(""),
	}
}

func jenkinsBuildConfigKeys() config.Keys {
	keys := buildConfigKeys()
	keys[GitSourceURIOption] = nil
	keys[GitSourceRefOption] = nil
	return keys
}

// ResolvedConfig holds the option values of a BuildConfig enricher for a
// single run. SourceURI and SourceRef are nil when they were not supplied.
type ResolvedConfig struct {
	Enabled       bool
	GitHubSecret  string
	GenericSecret string
	SourceURI     *string
	SourceRef     *string
}

func resolveConfig(resolver *config.Resolver) ResolvedConfig {
	return ResolvedConfig{
		Enabled:       resolver.IsYes(EnabledOption),
		GitHubSecret:  resolver.Get(GitHubWebHookSecretOption),
		GenericSecret: resolver.Get(GenericSecretOption),
		SourceURI:     resolver.GetOptional(GitSourceURIOption),
		SourceRef:     resolver.GetOptional(GitSourceRefOption),
	}
}
