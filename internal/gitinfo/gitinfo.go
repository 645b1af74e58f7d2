// Package gitinfo reports which revision of the design-system repository the
// server is indexing.
package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// ErrNotRepository is returned when the path is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Info describes HEAD of a repository.
type Info struct {
	// Branch is the short branch name, empty when HEAD is detached.
	Branch string `json:"branch,omitempty"`
	// Commit is the full hash HEAD points at, empty before the first commit.
	Commit   string `json:"commit,omitempty"`
	Detached bool   `json:"detached"`
	// Remote is the first URL of the origin remote, if one is configured.
	Remote string `json:"remote,omitempty"`
}

// Describe opens the repository containing repoRoot and reports its HEAD.
//
// The lookup walks up from repoRoot to the nearest .git directory, so a
// design system nested inside a monorepo reports the monorepo's HEAD.
//
// Returns:
//   - Info: HEAD branch, commit and origin URL
//   - error: ErrNotRepository if repoRoot is not in a git work tree, or the
//     underlying go-git error wrapped
func Describe(repoRoot string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(repoRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotRepository, repoRoot)
		}
		return Info{}, fmt.Errorf("cannot open git repository: %w", err)
	}

	var info Info
	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// No commits yet; HEAD is still a symbolic ref to the unborn branch.
		ref, symErr := repo.Storer.Reference(plumbing.HEAD)
		if symErr != nil {
			return Info{}, fmt.Errorf("cannot read HEAD: %w", symErr)
		}
		if ref.Type() == plumbing.SymbolicReference {
			info.Branch = ref.Target().Short()
		}
	case err != nil:
		return Info{}, fmt.Errorf("cannot read HEAD: %w", err)
	default:
		info.Commit = head.Hash().String()
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Detached = true
		}
	}

	info.Remote = originURL(repo)
	return info, nil
}

func originURL(repo *git.Repository) string {
	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}
	cfg := remote.Config()
	if cfg == nil || len(cfg.URLs) == 0 {
		return ""
	}
	return cfg.URLs[0]
}
