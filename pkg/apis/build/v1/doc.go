// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package v1 contains the subset of the build.openshift.io/v1 API that the
// enrichers emit: BuildConfig and the trigger, source and strategy types it
// is composed of.
// +k8s:deepcopy-gen=package,register
// +groupName=build.openshift.io
package v1

//go:generate go run k8s.io/code-generator/cmd/deepcopy-gen --output-file zz_generated.deepcopy.go --go-header-file ../../../../hack/boilerplate.go.txt .
