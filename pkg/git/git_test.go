// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package git_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/workspace7/pipeline-enricher/pkg/git"
)

var _ = Describe("Git", func() {

	DescribeTable("the source url validation",
		func(url string, expectError bool) {
			err := git.ValidateSourceURL(url)
			if expectError {
				Expect(err).To(HaveOccurred(), "for "+url)
				Expect(err.Error()).To(HavePrefix("invalid source url"))
			} else {
				Expect(err).ToNot(HaveOccurred(), "for "+url)
			}
		},
		Entry("Check HTTPS URL", "https://github.com/example/demo.git", false),
		Entry("Check HTTPS URL with scm prefix", "scm:git:https://github.com/example/demo.git", false),
		Entry("Check HTTP URL with custom port", "http://github.com:8080/example/demo.git", false),
		Entry("Check heritage SSH URL", "ssh://github.com/example/demo.git", false),
		Entry("Check SSH URL with scm prefix", "scm:git:git@github.com:example/demo.git", false),
		Entry("Check git protocol URL", "git://github.com/example/demo.git", false),
		Entry("Check local path", "/tmp/build", true),
		Entry("Check relative path", "foobar", true),
		Entry("Check FTP URL", "ftp://github.com/example/demo", true),
		Entry("Check empty URL", "", true),
		Entry("Check scm prefix only", "scm:git:", true),
	)

	It("strips the scm prefix", func() {
		Expect(git.StripSCMPrefix("scm:git:https://github.com/example/demo.git")).To(Equal("https://github.com/example/demo.git"))
		Expect(git.StripSCMPrefix("https://github.com/example/demo.git")).To(Equal("https://github.com/example/demo.git"))
	})
})
