package git

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Johannes-Berggren/goblin-prune/internal/models"
)

const branchRefPrefix = "refs/heads/"

// GetBranches returns every local branch sorted by the date of its tip
// commit, oldest first. Any branch that cannot be read fails the whole call.
func (r *Repository) GetBranches() ([]models.Branch, error) {
	head, err := r.headTarget()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list branches")
	}
	defer iter.Close()

	var branches []models.Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branch, err := r.readBranch(ref, head)
		if err != nil {
			return err
		}
		branches = append(branches, branch)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByCommitDate(branches)
	return branches, nil
}

func (r *Repository) readBranch(ref *plumbing.Reference, head plumbing.ReferenceName) (models.Branch, error) {
	// Short() rewrites invalid bytes, so check and trim the full name.
	full := ref.Name().String()
	if !utf8.ValidString(full) {
		return models.Branch{}, goerr.Wrap(ErrInvalidUTF8, "invalid branch name", goerr.V("ref", full))
	}
	name := strings.TrimPrefix(full, branchRefPrefix)

	resolved, err := r.repo.Reference(ref.Name(), true)
	if err != nil {
		return models.Branch{}, goerr.Wrap(err, "failed to resolve branch", goerr.V("branch", name))
	}

	commit, err := r.peelToCommit(resolved.Hash())
	if err != nil {
		return models.Branch{}, goerr.Wrap(err, "failed to read tip commit", goerr.V("branch", name))
	}

	if !utf8.ValidString(commit.Message) {
		return models.Branch{}, goerr.Wrap(ErrInvalidUTF8, "invalid commit message",
			goerr.V("branch", name), goerr.V("commit", commit.Hash.String()))
	}

	return models.Branch{
		Name: name,
		Commit: models.Commit{
			Hash:    commit.Hash.String(),
			Message: commit.Message,
			Date:    wallClock(commit.Committer.When),
		},
		IsHead: ref.Name() == head,
	}, nil
}

// peelToCommit follows annotated tags until it reaches a commit.
func (r *Repository) peelToCommit(hash plumbing.Hash) (*object.Commit, error) {
	obj, err := r.repo.Object(plumbing.AnyObject, hash)
	if err != nil {
		return nil, err
	}

	for {
		switch o := obj.(type) {
		case *object.Commit:
			return o, nil
		case *object.Tag:
			obj, err = o.Object()
			if err != nil {
				return nil, err
			}
		default:
			return nil, goerr.New("object is not a commit",
				goerr.V("hash", hash.String()), goerr.V("type", obj.Type().String()))
		}
	}
}

// wallClock drops the zone of t and keeps the time as read on the
// committer's clock, at second resolution.
func wallClock(t time.Time) time.Time {
	_, offset := t.Zone()
	return time.Unix(t.Unix(), 0).UTC().Add(time.Duration(offset) * time.Second)
}

func sortByCommitDate(branches []models.Branch) {
	sort.SliceStable(branches, func(i, j int) bool {
		return branches[i].Commit.Date.Before(branches[j].Commit.Date)
	})
}

// DeleteBranch removes the local branch ref and its config section, if any.
func (r *Repository) DeleteBranch(name string) error {
	refName := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(refName, false); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return goerr.Wrap(ErrBranchNotFound, "failed to delete branch", goerr.V("branch", name))
		}
		return goerr.Wrap(err, "failed to look up branch", goerr.V("branch", name))
	}

	if err := r.repo.Storer.RemoveReference(refName); err != nil {
		return goerr.Wrap(err, "failed to delete branch", goerr.V("branch", name))
	}

	if err := r.repo.DeleteBranch(name); err != nil && !errors.Is(err, gogit.ErrBranchNotFound) {
		return goerr.Wrap(err, "failed to remove branch config", goerr.V("branch", name))
	}

	return nil
}
