// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package git_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gogitv5 "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"k8s.io/utils/ptr"

	"github.com/workspace7/pipeline-enricher/pkg/git"
	"github.com/workspace7/pipeline-enricher/pkg/project"
)

var _ = Describe("Discovering the SCM of a project", func() {
	var (
		dir  string
		repo *gogitv5.Repository
	)

	signature := func() *object.Signature {
		return &object.Signature{Name: "Jane Doe", Email: "jane@example.com", When: time.Now()}
	}

	commit := func(file string) plumbing.Hash {
		Expect(os.WriteFile(filepath.Join(dir, file), []byte(file), 0o644)).To(Succeed())

		wt, err := repo.Worktree()
		Expect(err).ToNot(HaveOccurred())
		_, err = wt.Add(file)
		Expect(err).ToNot(HaveOccurred())

		hash, err := wt.Commit("add "+file, &gogitv5.CommitOptions{Author: signature()})
		Expect(err).ToNot(HaveOccurred())
		return hash
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "scm")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	Context("outside of a repository", func() {
		It("reports that there is no repository", func() {
			_, err := git.DiscoverSCM(dir)
			Expect(err).To(MatchError(git.ErrNoRepository))
		})
	})

	Context("inside of a repository", func() {
		BeforeEach(func() {
			var err error
			repo, err = gogitv5.PlainInit(dir, false)
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns empty details for an empty repository", func() {
			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm).To(Equal(&project.SCM{}))
		})

		It("uses the origin remote as connection", func() {
			_, err := repo.CreateRemote(&config.RemoteConfig{
				Name: "origin",
				URLs: []string{"https://github.com/example/demo.git"},
			})
			Expect(err).ToNot(HaveOccurred())
			commit("Jenkinsfile")

			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Connection).To(Equal(ptr.To("scm:git:https://github.com/example/demo.git")))
			Expect(scm.DeveloperConnection).To(Equal(ptr.To("scm:git:https://github.com/example/demo.git")))
			Expect(scm.Tag).To(BeNil())
		})

		It("ignores other remotes", func() {
			_, err := repo.CreateRemote(&config.RemoteConfig{
				Name: "upstream",
				URLs: []string{"https://github.com/example/upstream.git"},
			})
			Expect(err).ToNot(HaveOccurred())

			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Connection).To(BeNil())
			Expect(scm.DeveloperConnection).To(BeNil())
		})

		It("uses a lightweight tag on HEAD", func() {
			hash := commit("Jenkinsfile")
			_, err := repo.CreateTag("v1.0", hash, nil)
			Expect(err).ToNot(HaveOccurred())

			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Tag).To(Equal(ptr.To("v1.0")))
		})

		It("uses an annotated tag on HEAD", func() {
			hash := commit("Jenkinsfile")
			_, err := repo.CreateTag("v2.0", hash, &gogitv5.CreateTagOptions{
				Tagger:  signature(),
				Message: "release v2.0",
			})
			Expect(err).ToNot(HaveOccurred())

			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Tag).To(Equal(ptr.To("v2.0")))
		})

		It("ignores tags on older commits", func() {
			hash := commit("Jenkinsfile")
			_, err := repo.CreateTag("v1.0", hash, nil)
			Expect(err).ToNot(HaveOccurred())
			commit("pom.xml")

			scm, err := git.DiscoverSCM(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Tag).To(BeNil())
		})

		It("finds the repository from a subdirectory", func() {
			_, err := repo.CreateRemote(&config.RemoteConfig{
				Name: "origin",
				URLs: []string{"git@github.com:example/demo.git"},
			})
			Expect(err).ToNot(HaveOccurred())

			module := filepath.Join(dir, "module")
			Expect(os.Mkdir(module, 0o755)).To(Succeed())

			scm, err := git.DiscoverSCM(module)
			Expect(err).ToNot(HaveOccurred())
			Expect(scm.Connection).To(Equal(ptr.To("scm:git:git@github.com:example/demo.git")))
		})
	})
})
