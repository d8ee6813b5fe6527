// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	"context"
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
	"github.com/workspace7/pipeline-enricher/pkg/config"
	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
	"github.com/workspace7/pipeline-enricher/pkg/metrics"
	"github.com/workspace7/pipeline-enricher/pkg/resources"
)

// Names of the BuildConfig enrichers
const (
	BuildConfigEnricherName        = "fmp-openshift-bc-enricher"
	JenkinsBuildConfigEnricherName = "fmp-openshift-bc-jenkins-enricher"
)

const (
	resourceNameSuffix = "pipelines"
	buildLabel         = "build"
)

// BuildConfigEnricher adds a BuildConfig running the Jenkins pipeline of
// the project, if the project has a Jenkinsfile
type BuildConfigEnricher struct {
	name           string
	keys           config.Keys
	sourceResolver SourceResolver
	ectx           *Context
}

var _ Enricher = &BuildConfigEnricher{}

// NewBuildConfigEnricher returns the enricher that adds a BuildConfig
// without a build source
func NewBuildConfigEnricher(ectx *Context) Enricher {
	return &BuildConfigEnricher{
		name: BuildConfigEnricherName,
		keys: buildConfigKeys(),
		ectx: ectx,
	}
}

// NewJenkinsBuildConfigEnricher returns the enricher that adds a
// BuildConfig with the Git source of the project
func NewJenkinsBuildConfigEnricher(ectx *Context) Enricher {
	return &BuildConfigEnricher{
		name:           JenkinsBuildConfigEnricherName,
		keys:           jenkinsBuildConfigKeys(),
		sourceResolver: GitSourceResolver{},
		ectx:           ectx,
	}
}

// Name returns the name of the enricher
func (e *BuildConfigEnricher) Name() string {
	return e.name
}

// ResolveConfig returns the option values of the enricher
func (e *BuildConfigEnricher) ResolveConfig() ResolvedConfig {
	var cfg *config.Config
	if e.ectx != nil {
		cfg = e.ectx.Config
	}
	return resolveConfig(cfg.Resolver(e.name, e.keys))
}

// Assemble returns the BuildConfig of the project. It returns nil without
// an error when the enricher is disabled or the project has no Jenkinsfile.
func (e *BuildConfigEnricher) Assemble(ctx context.Context) (*buildv1.BuildConfig, error) {
	cfg := e.ResolveConfig()
	if !cfg.Enabled {
		ctxlog.Debug(ctx, "enricher is disabled")
		metrics.BuildConfigSkippedInc(e.name, metrics.SkipReasonDisabled)
		return nil, nil
	}

	if e.ectx == nil || e.ectx.Project == nil {
		return nil, errors.New("no project to enrich")
	}
	p := e.ectx.Project

	found, err := p.HasFile(JenkinsfileName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up the %s: %w", JenkinsfileName, err)
	}

	if !found {
		ctxlog.Debug(ctx, "no pipeline file found", "file", JenkinsfileName, "baseDir", p.BaseDir)
		metrics.BuildConfigSkippedInc(e.name, metrics.SkipReasonNoPipelineFile)
		return nil, nil
	}

	name := p.DefaultResourceName(resourceNameSuffix)
	bc := &buildv1.BuildConfig{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
			Labels: map[string]string{
				buildLabel: name,
			},
		},
		Spec: buildv1.BuildConfigSpec{
			Triggers:  BuildTriggers(cfg.GitHubSecret, cfg.GenericSecret),
			RunPolicy: buildv1.BuildRunPolicySerial,
			CommonSpec: buildv1.CommonSpec{
				Strategy: JenkinsPipelineStrategy(),
			},
		},
	}

	if e.sourceResolver != nil {
		bc.Spec.Source = e.sourceResolver.ResolveSource(cfg, p.SCM)
	}

	return bc, nil
}

// AddMissingResources appends the BuildConfig of the project to the list,
// if there is one
func (e *BuildConfigEnricher) AddMissingResources(ctx context.Context, list *resources.ListBuilder) error {
	bc, err := e.Assemble(ctx)
	if err != nil {
		return err
	}

	if bc == nil {
		return nil
	}

	ctxlog.Info(ctx, "Adding OpenShift Build Config with Jenkins Pipeline Strategy", "name", bc.Name)
	list.AddToBuildConfigItems(bc)
	metrics.BuildConfigAddedInc(e.name)

	return nil
}
