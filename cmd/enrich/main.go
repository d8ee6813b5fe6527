// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"knative.dev/pkg/signals"

	"github.com/workspace7/pipeline-enricher/pkg/config"
	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
	"github.com/workspace7/pipeline-enricher/version"
)

// settings composed by command-line flag values.
type settings struct {
	projectDir string   // directory containing the pom.xml
	artifactID string   // artifact id overriding the one of the pom.xml
	configFile string   // enricher configuration file
	input      string   // resource list the generated resources are added to
	enrichers  []string // enrichers to run, in order
	overrides  []string // enricher options as <enricher>.<option>=<value>
	output     string   // file to write the resource list to, - for stdout
	format     string   // yaml, json or table
	scmFromGit bool     // derive missing SCM details from the Git repository
	validate   bool     // validate the generated BuildConfigs
	summary    bool     // print the enricher counters to stderr
}

const longDesc = `
# enrich

Generates the OpenShift BuildConfig running the Jenkins pipeline of a project, and
writes it as part of a v1 List.

## Usage

Generate the BuildConfig for the project in the current directory:

	$ enrich

Add the BuildConfig to the resources generated so far:

	$ enrich --input target/classes/META-INF/fabric8/openshift.yml

Select the enricher and set its options:

	$ enrich --enricher fmp-openshift-bc-enricher \
		--set fmp-openshift-bc-enricher.githubWebHookSecret=secret101

## Options

Enricher options are looked up on the command-line (--set), in the environment
(ENRICHER_<ENRICHER>_<OPTION>, for example ENRICHER_FMP_OPENSHIFT_BC_JENKINS_ENRICHER_GITSOURCEURI)
and in the configuration file (--config), in this order.

## Return-Code

The command returns an error when the project cannot be read, an enricher fails, or
the validation (--validate) finds an invalid BuildConfig. A project without a
Jenkinsfile is not an error, the resource list is empty then.
`

// newRootCmd assembles the flags and the cobra sub-commands.
func newRootCmd() *cobra.Command {
	flagValues := &settings{}

	rootCmd := &cobra.Command{
		Use:           "enrich [flags]",
		Short:         "Generates the BuildConfig of a Jenkins pipeline project",
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := ctxlog.IntoContext(cmd.Context(), ctxlog.NewLoggerTo(cmd.ErrOrStderr(), "enrich"))

			return runEnrich(ctx, flagValues, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addFlags(rootCmd.Flags(), flagValues)
	rootCmd.PersistentFlags().AddGoFlagSet(ctxlog.CustomZapFlagSet())

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// addFlags binds the command-line flags to the settings
func addFlags(flags *pflag.FlagSet, s *settings) {
	flags.StringVar(&s.projectDir, "project-dir", ".", "directory of the project, containing the pom.xml")
	flags.StringVar(&s.artifactID, "artifact-id", "", "artifact id of the project, required without pom.xml")
	flags.StringVar(&s.configFile, "config", "", "enricher configuration file (YAML)")
	flags.StringVarP(&s.input, "input", "i", "", "existing resource list (YAML or JSON) to add the generated resources to, - for the standard input")
	flags.StringArrayVar(&s.enrichers, "enricher", nil, "enricher to run, can be repeated (default "+config.DefaultEnricher+")")
	flags.StringArrayVar(&s.overrides, "set", nil, "enricher option in the form <enricher>.<option>=<value>, can be repeated")
	flags.StringVarP(&s.output, "output", "o", "-", "file to write the resource list to, - for stdout")
	flags.StringVar(&s.format, "format", "", "output format: yaml, json or table (default yaml)")
	flags.BoolVar(&s.scmFromGit, "scm-from-git", false, "derive the SCM details from the Git repository when the pom.xml has none")
	flags.BoolVar(&s.validate, "validate", false, "validate the generated BuildConfigs")
	flags.BoolVar(&s.summary, "summary", false, "print a summary of the enricher runs to stderr")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Prints the version",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Version
			if v == "" {
				v = "devel"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

// main enrich's entrypoint.
func main() {
	if err := newRootCmd().ExecuteContext(signals.NewContext()); err != nil {
		log.Fatalf("[ERROR] %v\n", err)
	}
	os.Exit(0)
}
