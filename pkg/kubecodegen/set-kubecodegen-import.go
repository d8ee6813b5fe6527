// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools

// Require for getting the right code-generator package into the module so
// that deepcopy-gen can regenerate the deepcopy functions of the
// build.openshift.io/v1 types. This is called by go generate in
// pkg/apis/build/v1

package codegen

import _ "k8s.io/code-generator/cmd/deepcopy-gen" // required by go generate in pkg/apis/build/v1
