// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

const (
	// SCMPrefix is the prefix of Git connections in project descriptors
	SCMPrefix = "scm:git:"

	defaultRemote = "origin"
	httpsProtocol = "https"
	httpProtocol  = "http"
	fileProtocol  = "file"
	sshProtocol   = "ssh"
	gitProtocol   = "git"
)

// StripSCMPrefix returns the URL of a Git connection without its
// scm:git: prefix
func StripSCMPrefix(connection string) string {
	return strings.TrimPrefix(connection, SCMPrefix)
}

// ValidateSourceURL checks that the source URL, with or without the
// scm:git: prefix, points to a remote repository. The repository itself
// is not contacted.
func ValidateSourceURL(url string) error {
	url = StripSCMPrefix(url)
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("invalid source url: url is empty")
	}

	endpoint, err := transport.NewEndpoint(url)
	if err != nil {
		return fmt.Errorf("invalid source url: %w", err)
	}

	switch endpoint.Protocol {
	case httpsProtocol, httpProtocol, sshProtocol, gitProtocol:
		if endpoint.Host == "" {
			return fmt.Errorf("invalid source url: %s has no host", url)
		}
		return nil

	case fileProtocol:
		return fmt.Errorf("invalid source url: %s is a local path", url)

	default:
		return fmt.Errorf("invalid source url: unsupported protocol %s", endpoint.Protocol)
	}
}
