// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

const (
	// DefaultEnricher is the enricher that runs when none is selected
	DefaultEnricher = "fmp-openshift-bc-jenkins-enricher"

	outputFormatDefault = "yaml"

	// envVarPrefix is the prefix of every environment variable read by
	// the configuration, including the per enricher option overrides
	envVarPrefix = "ENRICHER_"

	// A comma separated list of enricher names to run, for example
	// ENRICHER_INCLUDE=fmp-openshift-bc-enricher
	includeEnvVar = envVarPrefix + "INCLUDE"

	// The format of the generated resource list, yaml, json or table
	outputFormatEnvVar = envVarPrefix + "OUTPUT_FORMAT"
)

// Config hosts the parameters of an enrichment run: which
// enrichers to run, how to render the result, and the options
// handed to the individual enrichers
type Config struct {
	Enrichers    []string
	OutputFormat string

	// Values contains the enricher options from the configuration
	// file, keyed by enricher name and option name
	Values map[string]map[string]string

	// Overrides contains the enricher options from the command-line,
	// they take precedence over everything else
	Overrides map[string]map[string]string

	env map[string]string
}

// file is the layout of the enricher configuration file
type file struct {
	Enricher struct {
		Includes []string                     `json:"includes,omitempty"`
		Config   map[string]map[string]string `json:"config,omitempty"`
	} `json:"enricher"`

	OutputFormat string `json:"outputFormat,omitempty"`
}

// NewDefaultConfig returns a new Config, which runs the default enricher
// and renders YAML
func NewDefaultConfig() *Config {
	return &Config{
		Enrichers:    []string{DefaultEnricher},
		OutputFormat: outputFormatDefault,
		Values:       map[string]map[string]string{},
		Overrides:    map[string]map[string]string{},
		env:          map[string]string{},
	}
}

// LoadFile updates the configuration with the content of the given YAML file
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	var content file
	if err := yaml.UnmarshalStrict(data, &content); err != nil {
		return fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	if len(content.Enricher.Includes) > 0 {
		c.Enrichers = content.Enricher.Includes
	}

	if content.OutputFormat != "" {
		c.OutputFormat = content.OutputFormat
	}

	for name, values := range content.Enricher.Config {
		for key, value := range values {
			set(c.Values, name, key, value)
		}
	}

	return nil
}

// SetConfigFromEnv updates the configuration managed by environment variables.
func (c *Config) SetConfigFromEnv() error {
	if include := os.Getenv(includeEnvVar); include != "" {
		c.Enrichers = splitList(include)
	}

	if format := os.Getenv(outputFormatEnvVar); format != "" {
		c.OutputFormat = format
	}

	// keep all prefixed variables, the enricher options are
	// matched against them once the option names are known
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok && strings.HasPrefix(key, envVarPrefix) {
			c.env[key] = value
		}
	}

	return nil
}

// SetOverride parses a command-line override in the form
// <enricher-name>.<option>=<value> and stores it
func (c *Config) SetOverride(assignment string) error {
	target, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid override %q, expected <enricher>.<option>=<value>", assignment)
	}

	// enricher names contain dashes but no dots, option names neither
	idx := strings.LastIndex(target, ".")
	if idx <= 0 || idx == len(target)-1 {
		return fmt.Errorf("invalid override %q, expected <enricher>.<option>=<value>", assignment)
	}

	set(c.Overrides, target[:idx], target[idx+1:], value)
	return nil
}

// Validate checks the configuration for unsupported settings
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "yaml", "json", "table":
	default:
		return fmt.Errorf("unsupported output format %q, use yaml, json or table", c.OutputFormat)
	}

	if len(c.Enrichers) == 0 {
		return fmt.Errorf("no enrichers selected")
	}

	return nil
}

// EnvVarName returns the name of the environment variable that overrides
// the given option of the given enricher, for example
// ENRICHER_FMP_OPENSHIFT_BC_ENRICHER_GENERICSECRET
func EnvVarName(enricher string, option string) string {
	return envVarPrefix + envSegment(enricher) + "_" + envSegment(option)
}

func envSegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

func set(m map[string]map[string]string, enricher string, key string, value string) {
	if _, ok := m[enricher]; !ok {
		m[enricher] = map[string]string{}
	}
	m[enricher][key] = value
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
