// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"errors"
	"fmt"
	"sort"

	gogitv5 "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"k8s.io/utils/ptr"

	"github.com/workspace7/pipeline-enricher/pkg/project"
)

// ErrNoRepository indicates that a directory is not part of a Git repository
var ErrNoRepository = errors.New("not a git repository")

// DiscoverSCM derives the SCM details of a project from the Git repository
// that contains the given directory. The URL of the origin remote becomes
// the connection and the developer connection, a tag pointing to HEAD
// becomes the tag.
func DiscoverSCM(dir string) (*project.SCM, error) {
	repo, err := gogitv5.PlainOpenWithOptions(dir, &gogitv5.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogitv5.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNoRepository, dir)
		}
		return nil, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	scm := &project.SCM{}

	remote, err := repo.Remote(defaultRemote)
	switch {
	case errors.Is(err, gogitv5.ErrRemoteNotFound):
		// no connection then

	case err != nil:
		return nil, fmt.Errorf("failed to read remote %s: %w", defaultRemote, err)

	case len(remote.Config().URLs) > 0:
		connection := SCMPrefix + remote.Config().URLs[0]
		scm.Connection = ptr.To(connection)
		scm.DeveloperConnection = ptr.To(connection)
	}

	tag, err := headTag(repo)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		scm.Tag = ptr.To(tag)
	}

	return scm, nil
}

// headTag returns the name of the tag that points to the HEAD commit, the
// first one in alphabetical order if there are several
func headTag(repo *gogitv5.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		// no commit yet
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	var names []string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()

		// annotated tags point to a tag object rather than the commit
		if tagObject, err := repo.TagObject(hash); err == nil {
			commit, err := tagObject.Commit()
			if err != nil {
				return nil
			}
			hash = commit.Hash
		}

		if hash == head.Hash() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	if len(names) == 0 {
		return "", nil
	}

	sort.Strings(names)
	return names[0], nil
}
