// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorFile is the name of the Maven project descriptor
const DescriptorFile = "pom.xml"

type pomSCM struct {
	Connection          *string `xml:"connection"`
	DeveloperConnection *string `xml:"developerConnection"`
	Tag                 *string `xml:"tag"`
}

type pomParent struct {
	GroupID string `xml:"groupId"`
	Version string `xml:"version"`
}

type pom struct {
	XMLName    xml.Name   `xml:"project"`
	Parent     *pomParent `xml:"parent"`
	GroupID    string     `xml:"groupId"`
	ArtifactID string     `xml:"artifactId"`
	Version    string     `xml:"version"`
	Name       string     `xml:"name"`
	SCM        *pomSCM    `xml:"scm"`
}

// Load reads the project descriptor (pom.xml) from the given directory
func Load(dir string) (*Project, error) {
	baseDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}

	data, err := os.ReadFile(filepath.Join(baseDir, DescriptorFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, err
	}

	p.BaseDir = baseDir
	return p, nil
}

// Parse decodes a Maven project descriptor. Group id and version are
// inherited from the parent when the project does not declare them.
func Parse(data []byte) (*Project, error) {
	var descriptor pom
	if err := xml.Unmarshal(data, &descriptor); err != nil {
		return nil, fmt.Errorf("failed to parse project descriptor: %w", err)
	}

	if strings.TrimSpace(descriptor.ArtifactID) == "" {
		return nil, fmt.Errorf("project descriptor has no artifactId")
	}

	p := &Project{
		GroupID:    strings.TrimSpace(descriptor.GroupID),
		ArtifactID: strings.TrimSpace(descriptor.ArtifactID),
		Version:    strings.TrimSpace(descriptor.Version),
		Name:       strings.TrimSpace(descriptor.Name),
	}

	if descriptor.Parent != nil {
		if p.GroupID == "" {
			p.GroupID = strings.TrimSpace(descriptor.Parent.GroupID)
		}
		if p.Version == "" {
			p.Version = strings.TrimSpace(descriptor.Parent.Version)
		}
	}

	if descriptor.SCM != nil {
		p.SCM = &SCM{
			Connection:          trimmed(descriptor.SCM.Connection),
			DeveloperConnection: trimmed(descriptor.SCM.DeveloperConnection),
			Tag:                 trimmed(descriptor.SCM.Tag),
		}
	}

	return p, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	value := strings.TrimSpace(*s)
	return &value
}
