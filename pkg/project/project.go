// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package project holds the metadata of the project whose resources are
// being enriched: its identity, base directory and SCM details.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// maxResourceNameLength is the maximum length of a DNS-1123 label
	maxResourceNameLength = 63
)

// ErrInvalidBaseDir indicates that the project base directory cannot be
// used to look up files, which is different from a file not being there
var ErrInvalidBaseDir = errors.New("invalid project base directory")

// SCM describes the source control details declared by a project. Every
// field is optional, a nil pointer means the project does not declare it.
type SCM struct {
	Connection          *string
	DeveloperConnection *string
	Tag                 *string
}

// Project describes the identity and the location of a project
type Project struct {
	GroupID    string
	ArtifactID string
	Version    string
	Name       string

	// BaseDir is the directory that contains the project descriptor
	BaseDir string

	// SCM is nil when the project does not declare any source control details
	SCM *SCM
}

// DefaultResourceName returns the name to be used for resources generated
// for this project: the artifact id followed by the given suffixes, joined
// with dashes, lower-cased and cut to the length of a DNS-1123 label.
func (p *Project) DefaultResourceName(suffixes ...string) string {
	parts := []string{p.ArtifactID}
	for _, suffix := range suffixes {
		if suffix != "" {
			parts = append(parts, suffix)
		}
	}

	name := strings.ToLower(strings.Join(parts, "-"))
	if len(name) > maxResourceNameLength {
		name = name[:maxResourceNameLength]
	}

	return strings.TrimRight(name, "-.")
}

// HasFile reports whether a regular file with the given name exists
// directly under the project base directory. A missing file is not an
// error, an unusable base directory is.
func (p *Project) HasFile(name string) (bool, error) {
	if strings.TrimSpace(p.BaseDir) == "" {
		return false, fmt.Errorf("%w: path is empty", ErrInvalidBaseDir)
	}

	info, err := os.Stat(p.BaseDir)
	switch {
	case err != nil:
		return false, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)

	case !info.IsDir():
		return false, fmt.Errorf("%w: %s is not a directory", ErrInvalidBaseDir, p.BaseDir)
	}

	info, err = os.Stat(filepath.Join(p.BaseDir, name))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil

	case err != nil:
		return false, fmt.Errorf("failed to check for %s in %s: %w", name, p.BaseDir, err)

	default:
		return !info.IsDir(), nil
	}
}
