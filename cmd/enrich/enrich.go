// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	kerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/workspace7/pipeline-enricher/pkg/config"
	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
	"github.com/workspace7/pipeline-enricher/pkg/enricher"
	"github.com/workspace7/pipeline-enricher/pkg/git"
	"github.com/workspace7/pipeline-enricher/pkg/metrics"
	"github.com/workspace7/pipeline-enricher/pkg/project"
	"github.com/workspace7/pipeline-enricher/pkg/resources"
	"github.com/workspace7/pipeline-enricher/pkg/validate"
)

// runEnrich runs the selected enrichers against the project and writes the
// resulting resource list
func runEnrich(ctx context.Context, s *settings, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cfg, err := loadConfig(s)
	if err != nil {
		return err
	}

	p, err := loadProject(ctx, s)
	if err != nil {
		return err
	}

	ctx = ctxlog.WithValues(ctx, "project", p.ArtifactID)
	ctxlog.Debug(ctx, "running enrichers", "enrichers", cfg.Enrichers, "baseDir", p.BaseDir)

	metrics.InitPrometheus()

	list, err := loadInput(s.input, stdin)
	if err != nil {
		return err
	}

	if err := enricher.Run(ctx, &enricher.Context{Project: p, Config: cfg}, enricher.NewRegistry(), cfg.Enrichers, list); err != nil {
		return err
	}

	if s.validate {
		var errs []error
		for _, bc := range list.BuildConfigs() {
			if err := validate.BuildConfig(ctx, bc); err != nil {
				errs = append(errs, err)
			}
		}
		if err := kerrors.NewAggregate(errs); err != nil {
			return err
		}
	}

	if err := writeOutput(s.output, stdout, func(w io.Writer) error {
		return list.Encode(w, cfg.OutputFormat)
	}); err != nil {
		return err
	}

	if s.summary {
		summaries, err := metrics.Summarize()
		if err != nil {
			return err
		}
		metrics.PrintSummary(stderr, summaries)
	}

	return nil
}

// loadConfig combines the configuration file, the environment and the
// command-line flags, in increasing precedence
func loadConfig(s *settings) (*config.Config, error) {
	cfg := config.NewDefaultConfig()

	if s.configFile != "" {
		if err := cfg.LoadFile(s.configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.SetConfigFromEnv(); err != nil {
		return nil, err
	}

	if len(s.enrichers) > 0 {
		cfg.Enrichers = s.enrichers
	}

	if s.format != "" {
		cfg.OutputFormat = s.format
	}

	for _, override := range s.overrides {
		if err := cfg.SetOverride(override); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadProject reads the pom.xml of the project directory. Without pom.xml,
// the artifact id flag is the only source of the project identity.
func loadProject(ctx context.Context, s *settings) (*project.Project, error) {
	p, err := project.Load(s.projectDir)
	switch {
	case errors.Is(err, os.ErrNotExist) && s.artifactID != "":
		baseDir, err := filepath.Abs(s.projectDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", project.ErrInvalidBaseDir, err)
		}
		p = &project.Project{ArtifactID: s.artifactID, BaseDir: baseDir}

	case err != nil:
		return nil, err

	case s.artifactID != "":
		p.ArtifactID = s.artifactID
	}

	if p.SCM == nil && s.scmFromGit {
		scm, err := git.DiscoverSCM(p.BaseDir)
		switch {
		case errors.Is(err, git.ErrNoRepository):
			ctxlog.Debug(ctx, "project is not part of a Git repository", "baseDir", p.BaseDir)

		case err != nil:
			return nil, err

		default:
			p.SCM = scm
		}
	}

	return p, nil
}

// loadInput returns the resources of the input file or, for "-", of the
// standard input. Without input, the list is empty.
func loadInput(input string, stdin io.Reader) (*resources.ListBuilder, error) {
	switch input {
	case "":
		return resources.NewListBuilder(), nil

	case "-":
		return resources.Decode(stdin)
	}

	file, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return resources.Decode(file)
}

// writeOutput hands the write function the standard output or the given
// file
func writeOutput(output string, stdout io.Writer, write func(io.Writer) error) error {
	if output == "" || output == "-" {
		return write(stdout)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
