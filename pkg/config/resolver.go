// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
)

// Keys declares the options of an enricher, mapping each option name to
// its default value. Options without a default map to nil.
type Keys map[string]*string

// Resolver resolves the options of a single enricher
type Resolver struct {
	enricher string
	keys     Keys
	config   *Config
}

// Resolver returns the option resolver for the given enricher and its
// declared options
func (c *Config) Resolver(enricher string, keys Keys) *Resolver {
	return &Resolver{
		enricher: enricher,
		keys:     keys,
		config:   c,
	}
}

// Lookup returns the supplied value of the option, or its default. The
// boolean is false if the option has neither, or is not declared.
//
// Supplied values are looked up in this order: command-line overrides,
// environment variables, configuration file.
func (r *Resolver) Lookup(key string) (string, bool) {
	def, declared := r.keys[key]
	if !declared {
		return "", false
	}

	if r.config != nil {
		if value, ok := r.config.Overrides[r.enricher][key]; ok {
			return value, true
		}

		if value, ok := r.config.env[EnvVarName(r.enricher, key)]; ok {
			return value, true
		}

		if value, ok := r.config.Values[r.enricher][key]; ok {
			return value, true
		}
	}

	if def == nil {
		return "", false
	}

	return *def, true
}

// Get returns the value of the option, an empty string if it has none
func (r *Resolver) Get(key string) string {
	value, _ := r.Lookup(key)
	return value
}

// GetOptional returns the value of the option, nil if it has none
func (r *Resolver) GetOptional(key string) *string {
	value, ok := r.Lookup(key)
	if !ok {
		return nil
	}
	return &value
}

// IsYes reports whether the option is set to "yes", ignoring case
func (r *Resolver) IsYes(key string) bool {
	return strings.EqualFold(r.Get(key), "yes")
}
