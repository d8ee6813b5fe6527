// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	"k8s.io/utils/ptr"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
	"github.com/workspace7/pipeline-enricher/pkg/project"
)

// DefaultGitRef is the ref used when the project SCM does not declare a tag
const DefaultGitRef = "master"

// SourceResolver determines the build source of a BuildConfig
type SourceResolver interface {
	ResolveSource(cfg ResolvedConfig, scm *project.SCM) buildv1.BuildSource
}

// GitSourceResolver binds the BuildConfig to a Git source
type GitSourceResolver struct{}

// ResolveSource returns a Git build source, see ResolveGitSource
func (GitSourceResolver) ResolveSource(cfg ResolvedConfig, scm *project.SCM) buildv1.BuildSource {
	uri, ref := ResolveGitSource(cfg.SourceURI, cfg.SourceRef, scm)
	return buildv1.BuildSource{
		Type: buildv1.BuildSourceGit,
		Git: &buildv1.GitBuildSource{
			URI: uri,
			Ref: ref,
		},
	}
}

// ResolveGitSource determines the Git uri and ref of the build source.
//
// Without SCM details the configured values are used as they are. With
// SCM details, a configured uri wins over the developer connection, which
// wins over the connection. The ref is always the SCM tag then, even if a
// ref is configured, and "master" if the SCM has no tag.
func ResolveGitSource(configuredURI *string, configuredRef *string, scm *project.SCM) (string, string) {
	if scm == nil {
		return ptr.Deref(configuredURI, ""), ptr.Deref(configuredRef, "")
	}

	uri := configuredURI
	if uri == nil {
		uri = scm.DeveloperConnection
	}
	if uri == nil {
		uri = scm.Connection
	}

	return ptr.Deref(uri, ""), ptr.Deref(scm.Tag, DefaultGitRef)
}
