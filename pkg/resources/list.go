// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package resources provides the resource collection that enrichers add
// their generated resources to.
package resources

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	"github.com/workspace7/pipeline-enricher/pkg/apis"
	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
)

var scheme = runtime.NewScheme()

func init() {
	if err := apis.AddToScheme(scheme); err != nil {
		panic(err)
	}
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		panic(err)
	}
}

// ListBuilder accumulates the resources generated during an enrichment
// run. It is shared by all enrichers, each of them only appends to it:
// existing entries are never replaced, removed or reordered.
type ListBuilder struct {
	items []runtime.Object
}

// NewListBuilder returns a ListBuilder that already contains the given items
func NewListBuilder(items ...runtime.Object) *ListBuilder {
	b := &ListBuilder{}
	b.AddToItems(items...)
	return b
}

// AddToItems appends arbitrary resources, nil entries are ignored
func (b *ListBuilder) AddToItems(objs ...runtime.Object) *ListBuilder {
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		b.items = append(b.items, obj)
	}
	return b
}

// AddToBuildConfigItems appends BuildConfigs, nil entries are ignored
func (b *ListBuilder) AddToBuildConfigItems(bcs ...*buildv1.BuildConfig) *ListBuilder {
	for _, bc := range bcs {
		if bc == nil {
			continue
		}
		b.items = append(b.items, bc)
	}
	return b
}

// Len returns the number of accumulated resources
func (b *ListBuilder) Len() int {
	return len(b.items)
}

// Items returns the accumulated resources in insertion order. The returned
// slice is a copy, the resources themselves are not.
func (b *ListBuilder) Items() []runtime.Object {
	result := make([]runtime.Object, len(b.items))
	copy(result, b.items)
	return result
}

// BuildConfigs returns the accumulated BuildConfigs in insertion order
func (b *ListBuilder) BuildConfigs() []*buildv1.BuildConfig {
	var result []*buildv1.BuildConfig
	for _, item := range b.items {
		if bc, ok := item.(*buildv1.BuildConfig); ok {
			result = append(result, bc)
		}
	}
	return result
}

// Build returns the accumulated resources as a v1 List. Every item is a
// copy with its apiVersion and kind set.
func (b *ListBuilder) Build() (*corev1.List, error) {
	list := &corev1.List{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "List",
		},
		Items: make([]runtime.RawExtension, 0, len(b.items)),
	}

	for _, item := range b.items {
		obj, err := withKind(item)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, runtime.RawExtension{Object: obj})
	}

	return list, nil
}

// withKind returns a copy of the object with the group, version and kind
// from the scheme, unless the object already carries them
func withKind(obj runtime.Object) (runtime.Object, error) {
	obj = obj.DeepCopyObject()
	if !obj.GetObjectKind().GroupVersionKind().Empty() {
		return obj, nil
	}

	gvks, _, err := scheme.ObjectKinds(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to determine the kind of %T: %w", obj, err)
	}

	obj.GetObjectKind().SetGroupVersionKind(gvks[0])
	return obj, nil
}
