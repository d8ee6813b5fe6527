// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version describes the version of the enrich command, set at build time
// with -ldflags "-X github.com/workspace7/pipeline-enricher/version.Version=..."
var Version = ""

// SetVersion sets the version of the enrich command
func SetVersion(version string) {
	Version = version
}
