package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/Johannes-Berggren/goblin-prune/internal/git"
	"github.com/Johannes-Berggren/goblin-prune/internal/models"
	"github.com/Johannes-Berggren/goblin-prune/internal/review"
	"github.com/Johannes-Berggren/goblin-prune/internal/terminal"
	"github.com/Johannes-Berggren/goblin-prune/internal/ui"
)

// Config holds what a session needs from the process.
type Config struct {
	// Dir is where repository discovery starts.
	Dir    string
	Stdin  *os.File
	Stdout io.Writer
	Logger *slog.Logger
}

// Repository is the part of a git repository a review session needs.
type Repository interface {
	GetBranches() ([]models.Branch, error)
	DeleteBranch(name string) error
}

// Run holds the terminal in raw mode for the whole session and restores it
// on every return path.
func Run(cfg Config) (err error) {
	restore, err := terminal.MakeRaw(cfg.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	repo, err := git.Open(cfg.Dir)
	if err != nil {
		return err
	}
	cfg.Logger.Debug("repository opened", "dir", cfg.Dir)

	return Review(repo, cfg.Stdin, ui.NewPrinter(cfg.Stdout), cfg.Logger)
}

// Review takes the branch snapshot, prints the summary and walks the
// branches with the user.
func Review(repo Repository, in io.Reader, printer *ui.Printer, logger *slog.Logger) error {
	branches, err := repo.GetBranches()
	if err != nil {
		return err
	}
	logger.Info("branches listed", "count", len(branches))

	if err := printer.Summary(branches); err != nil {
		return err
	}

	return review.New(in, printer, repo, review.WithLogger(logger)).Run(branches)
}
