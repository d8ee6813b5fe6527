// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package apis

import (
	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

func init() {
	// Register the types with the Scheme so the components can map objects to GroupVersionKinds and back
	AddToSchemes = append(AddToSchemes, buildv1.SchemeBuilder.AddToScheme)
}
