package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"
	"github.com/muesli/termenv"

	"github.com/Johannes-Berggren/goblin-prune/internal/models"
)

// The terminal is in raw mode, so every line break needs a carriage return.
const newline = "\r\n"

// Printer writes the styled session output. Nothing is buffered: each call
// reaches the underlying writer before it returns.
type Printer struct {
	w      io.Writer
	styles styles
}

// Option configures a Printer.
type Option func(*lipgloss.Renderer)

// WithColorProfile forces a color profile instead of detecting it from the
// writer.
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(profile)
	}
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}
	return &Printer{
		w:      w,
		styles: newStyles(r),
	}
}

func (p *Printer) print(parts ...string) error {
	if _, err := io.WriteString(p.w, strings.Join(parts, "")); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

// Summary prints the branch count and, if one is checked out, the HEAD branch.
func (p *Printer) Summary(branches []models.Branch) error {
	s := p.styles
	if err := p.print(s.text.Render(fmt.Sprintf("%d branches found:", len(branches)))); err != nil {
		return err
	}

	head, ok := models.HeadBranch(branches)
	if !ok {
		return nil
	}
	return p.print(
		newline,
		s.text.Render("HEAD is on branch: "),
		s.bold.Render(head.Name),
		newline,
	)
}

// BranchHeader prints the branch name, its last commit date and a HEAD marker.
func (p *Printer) BranchHeader(b models.Branch) error {
	s := p.styles
	parts := []string{
		newline,
		s.text.Render("Branch: "),
		s.bold.Render(b.Name),
		s.text.Render(" -> last_commit: " + b.Commit.FormattedDate()),
	}
	if b.IsHead {
		parts = append(parts, s.head.Render("  HEAD"))
	}
	parts = append(parts, newline)
	return p.print(parts...)
}

// CommandPrompt asks for the next command.
func (p *Printer) CommandPrompt() error {
	return p.print(p.styles.bold.Render("(s,k,d,?,q) > "))
}

// Echo shows the key the user pressed; raw mode disables the terminal echo.
func (p *Printer) Echo(c byte) error {
	return p.print(p.styles.text.Render(string(rune(c))), newline)
}

// Commit prints the tip commit hash and message.
func (p *Printer) Commit(b models.Branch) error {
	s := p.styles
	parts := []string{
		s.text.Render("SHA1 : '" + b.Commit.Hash + "' "), newline,
		s.text.Render("message: "),
	}
	// Render each line alone; lipgloss pads multi-line blocks.
	lines := strings.Split(strings.TrimRight(b.Commit.Message, "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, newline)
		}
		parts = append(parts, s.message.Render(line))
	}
	parts = append(parts, newline)
	return p.print(parts...)
}

// Help lists the one-letter commands.
func (p *Printer) Help() error {
	lines := []string{
		"Commands details:",
		"'s' => Show last commit details",
		"'d' => Delete the branch",
		"'k' => Keep the branch",
		"'q' => Quit the program",
		"'?' => Show this help",
	}

	parts := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		parts = append(parts, p.styles.notice.Render(line), newline)
	}
	return p.print(parts...)
}

// ConfirmDelete asks whether the branch should really be deleted.
func (p *Printer) ConfirmDelete(b models.Branch) error {
	s := p.styles
	return p.print(
		s.text.Render("Are you sure you want to "),
		s.danger.Render("delete"),
		s.text.Render(" branch : "),
		s.bold.Render(b.Name),
	)
}

// ConfirmPrompt asks for a y/n answer.
func (p *Printer) ConfirmPrompt() error {
	return p.print(newline, p.styles.bold.Render("(y,n) > "))
}

// Deleted reports a successful delete.
func (p *Printer) Deleted() error {
	return p.print(p.styles.text.Render("Branch successfully deleted"), newline)
}

// Aborted reports a refused delete.
func (p *Printer) Aborted() error {
	return p.print(p.styles.text.Render("Delete was aborted"), newline)
}

// InvalidAnswer tells the user which answers are accepted.
func (p *Printer) InvalidAnswer() error {
	return p.print(p.styles.notice.Render("Please use 'y' for YES or 'n' for NO"))
}
