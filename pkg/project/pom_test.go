// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package project_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/workspace7/pipeline-enricher/pkg/project"
)

const pomWithSCM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.workspace7</groupId>
    <artifactId>parent</artifactId>
    <version>1.2.0</version>
  </parent>
  <artifactId>demo</artifactId>
  <name>Demo Application</name>
  <scm>
    <connection>scm:git:http://y</connection>
    <developerConnection>scm:git:ssh://x</developerConnection>
    <tag>v1.0</tag>
  </scm>
</project>
`

const pomWithoutSCM = `<project>
  <groupId>org.workspace7</groupId>
  <artifactId>demo</artifactId>
  <version>0.1.0</version>
</project>
`

var _ = Describe("Project descriptor", func() {
	It("should parse the identity and inherit from the parent", func() {
		p, err := project.Parse([]byte(pomWithSCM))
		Expect(err).ToNot(HaveOccurred())

		Expect(p.GroupID).To(Equal("org.workspace7"))
		Expect(p.ArtifactID).To(Equal("demo"))
		Expect(p.Version).To(Equal("1.2.0"))
		Expect(p.Name).To(Equal("Demo Application"))
	})

	It("should parse the SCM details", func() {
		p, err := project.Parse([]byte(pomWithSCM))
		Expect(err).ToNot(HaveOccurred())

		Expect(p.SCM).ToNot(BeNil())
		Expect(p.SCM.Connection).To(Equal(ptr.To("scm:git:http://y")))
		Expect(p.SCM.DeveloperConnection).To(Equal(ptr.To("scm:git:ssh://x")))
		Expect(p.SCM.Tag).To(Equal(ptr.To("v1.0")))
	})

	It("should keep undeclared SCM fields absent", func() {
		p, err := project.Parse([]byte(`<project><artifactId>demo</artifactId><scm><connection>scm:git:http://y</connection></scm></project>`))
		Expect(err).ToNot(HaveOccurred())

		Expect(p.SCM).ToNot(BeNil())
		Expect(p.SCM.DeveloperConnection).To(BeNil())
		Expect(p.SCM.Tag).To(BeNil())
	})

	It("should leave the SCM empty when the project declares none", func() {
		p, err := project.Parse([]byte(pomWithoutSCM))
		Expect(err).ToNot(HaveOccurred())
		Expect(p.SCM).To(BeNil())
	})

	It("should reject a descriptor without artifactId", func() {
		_, err := project.Parse([]byte(`<project><groupId>g</groupId></project>`))
		Expect(err).To(HaveOccurred())
	})

	It("should reject malformed content", func() {
		_, err := project.Parse([]byte(`<project>`))
		Expect(err).To(HaveOccurred())
	})

	It("should load the descriptor from a directory", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, project.DescriptorFile), []byte(pomWithoutSCM), 0644)).To(Succeed())

		p, err := project.Load(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.BaseDir).To(Equal(dir))
		Expect(p.ArtifactID).To(Equal("demo"))
	})

	It("should fail to load from a directory without descriptor", func() {
		_, err := project.Load(GinkgoT().TempDir())
		Expect(err).To(HaveOccurred())
	})
})
