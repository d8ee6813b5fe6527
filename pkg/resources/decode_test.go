// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package resources_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	buildv1 "github.com/workspace7/pipeline-enricher/pkg/apis/build/v1"
	. "github.com/workspace7/pipeline-enricher/pkg/resources"
)

const fragmentList = `
apiVersion: v1
kind: List
items:
- apiVersion: v1
  kind: Service
  metadata:
    name: demo
  spec:
    ports:
    - port: 8080
- apiVersion: route.openshift.io/v1
  kind: Route
  metadata:
    name: demo
  spec:
    to:
      kind: Service
      name: demo
`

var _ = Describe("Decode", func() {
	It("reads the items of a v1 List", func() {
		list, err := Decode(strings.NewReader(fragmentList))
		Expect(err).ToNot(HaveOccurred())

		items := list.Items()
		Expect(items).To(HaveLen(2))

		service, ok := items[0].(*corev1.Service)
		Expect(ok).To(BeTrue())
		Expect(service.Name).To(Equal("demo"))
		Expect(service.Spec.Ports[0].Port).To(BeEquivalentTo(8080))

		route, ok := items[1].(*unstructured.Unstructured)
		Expect(ok).To(BeTrue())
		Expect(route.GetKind()).To(Equal("Route"))
		Expect(route.GetName()).To(Equal("demo"))
	})

	It("reads a single resource", func() {
		list, err := Decode(strings.NewReader(`{"apiVersion":"v1","kind":"ConfigMap","metadata":{"name":"settings"}}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Len()).To(Equal(1))
		Expect(list.Items()[0]).To(BeAssignableToTypeOf(&corev1.ConfigMap{}))
	})

	It("reads BuildConfigs it has written", func() {
		var buf bytes.Buffer
		Expect(NewListBuilder(sampleBuildConfig("demo-pipelines")).Encode(&buf, FormatYAML)).To(Succeed())

		list, err := Decode(&buf)
		Expect(err).ToNot(HaveOccurred())

		bcs := list.BuildConfigs()
		Expect(bcs).To(HaveLen(1))
		Expect(bcs[0].Name).To(Equal("demo-pipelines"))
		Expect(bcs[0].Spec.RunPolicy).To(Equal(buildv1.BuildRunPolicySerial))
		Expect(bcs[0].Spec.Source.Git.URI).To(Equal("https://github.com/example/demo.git"))
	})

	It("keeps the order when more resources are added", func() {
		list, err := Decode(strings.NewReader(fragmentList))
		Expect(err).ToNot(HaveOccurred())

		list.AddToBuildConfigItems(sampleBuildConfig("demo-pipelines"))

		result, err := list.Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Items).To(HaveLen(3))
		Expect(result.Items[0].Object.GetObjectKind().GroupVersionKind().Kind).To(Equal("Service"))
		Expect(result.Items[1].Object.GetObjectKind().GroupVersionKind().Kind).To(Equal("Route"))
		Expect(result.Items[2].Object.GetObjectKind().GroupVersionKind().Kind).To(Equal("BuildConfig"))
	})

	It("fails for documents without kind", func() {
		_, err := Decode(strings.NewReader(`{"metadata":{"name":"settings"}}`))
		Expect(err).To(HaveOccurred())
	})
})
