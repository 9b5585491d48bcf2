package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
)

// Errors returned by Repository.
var (
	ErrInvalidUTF8    = errors.New("text is not valid UTF-8")
	ErrBranchNotFound = errors.New("branch not found")
)

// Repository is a local git repository whose branches are being reviewed.
type Repository struct {
	repo *gogit.Repository
}

// Open finds the repository containing dir, walking up through parent
// directories until a .git is found.
func Open(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("dir", dir))
	}
	return New(repo), nil
}

// New wraps an already opened repository.
func New(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// headTarget returns the branch HEAD points at. It is empty when HEAD is
// detached.
func (r *Repository) headTarget() (plumbing.ReferenceName, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to read HEAD")
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return head.Target(), nil
}
