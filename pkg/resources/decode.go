// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	kubectlscheme "k8s.io/kubectl/pkg/scheme"

	"github.com/workspace7/pipeline-enricher/pkg/apis"
)

func init() {
	if err := apis.AddToScheme(kubectlscheme.Scheme); err != nil {
		panic(err)
	}
}

// Decode reads a YAML or JSON document, either a v1 List or a single
// resource, into a new ListBuilder. Kinds the scheme does not know are
// kept as unstructured objects.
func Decode(r io.Reader) (*ListBuilder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource list: %w", err)
	}

	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	list, ok := obj.(*corev1.List)
	if !ok {
		return NewListBuilder(obj), nil
	}

	b := NewListBuilder()
	for i, item := range list.Items {
		if item.Object != nil {
			b.AddToItems(item.Object)
			continue
		}

		obj, err := decodeObject(item.Raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode item %d of the resource list: %w", i, err)
		}
		b.AddToItems(obj)
	}

	return b, nil
}

func decodeObject(data []byte) (runtime.Object, error) {
	decode := kubectlscheme.Codecs.UniversalDeserializer().Decode

	obj, _, err := decode(data, nil, nil)
	if runtime.IsNotRegisteredError(err) {
		u := &unstructured.Unstructured{}
		if _, _, err := decode(data, nil, u); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		return u, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode resource: %w", err)
	}

	return obj, nil
}
