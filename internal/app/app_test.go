package app_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/goblin-prune/internal/app"
	"github.com/Johannes-Berggren/goblin-prune/internal/git"
	"github.com/Johannes-Berggren/goblin-prune/internal/ui"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupRepo creates master with two commits and an older branch "old" on the
// first one. HEAD stays on master.
func setupRepo(t *testing.T) *gogit.Repository {
	t.Helper()
	r, err := gogit.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)
	w, err := r.Worktree()
	require.NoError(t, err)

	when := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	first, err := w.Commit("old work\n", &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "Test", Email: "test@example.com", When: when},
	})
	require.NoError(t, err)
	_, err = w.Commit("current work\n", &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "Test", Email: "test@example.com", When: when.Add(24 * time.Hour)},
	})
	require.NoError(t, err)

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName("old"), first)
	require.NoError(t, r.Storer.SetReference(ref))
	return r
}

func review(t *testing.T, r *gogit.Repository, input string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	printer := ui.NewPrinter(&buf, ui.WithColorProfile(termenv.Ascii))
	err := app.Review(git.New(r), strings.NewReader(input), printer, discard)
	return buf.String(), err
}

func TestReview_DeleteOldKeepHead(t *testing.T) {
	r := setupRepo(t)

	out, err := review(t, r, "dyk")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "2 branches found:\r\nHEAD is on branch: master\r\n"))
	assert.Less(t, strings.Index(out, "Branch: old "), strings.Index(out, "Branch: master "))
	assert.Contains(t, out, "Branch successfully deleted")

	_, err = r.Reference(plumbing.NewBranchReferenceName("old"), false)
	assert.ErrorIs(t, err, plumbing.ErrReferenceNotFound)
	_, err = r.Reference(plumbing.NewBranchReferenceName("master"), false)
	assert.NoError(t, err)
}

func TestReview_RefuseLeavesRepository(t *testing.T) {
	r := setupRepo(t)

	out, err := review(t, r, "dnq")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete was aborted")

	branches, err := git.New(r).GetBranches()
	require.NoError(t, err)
	assert.Len(t, branches, 2)
}

func TestReview_ListingErrorShowsNothing(t *testing.T) {
	r := setupRepo(t)
	ghost := plumbing.NewHashReference(plumbing.NewBranchReferenceName("ghost"),
		plumbing.NewHash("2222222222222222222222222222222222222222"))
	require.NoError(t, r.Storer.SetReference(ghost))

	out, err := review(t, r, "k")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRun_NoRepository(t *testing.T) {
	stdin, w, err := os.Pipe()
	require.NoError(t, err)
	defer stdin.Close()
	defer w.Close()

	var buf bytes.Buffer
	err = app.Run(app.Config{
		Dir:    t.TempDir(),
		Stdin:  stdin,
		Stdout: &buf,
		Logger: discard,
	})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRun_PipedInput(t *testing.T) {
	dir := t.TempDir()
	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := r.Worktree()
	require.NoError(t, err)
	_, err = w.Commit("init\n", &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	stdin, input, err := os.Pipe()
	require.NoError(t, err)
	defer stdin.Close()
	_, err = input.WriteString("sq")
	require.NoError(t, err)
	require.NoError(t, input.Close())

	var buf bytes.Buffer
	err = app.Run(app.Config{Dir: dir, Stdin: stdin, Stdout: &buf, Logger: discard})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1 branches found:")
	assert.Contains(t, out, "message: init")
}
