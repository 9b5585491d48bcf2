package review

import (
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Johannes-Berggren/goblin-prune/internal/models"
	"github.com/Johannes-Berggren/goblin-prune/internal/ui"
)

// Deleter removes a local branch from the repository.
type Deleter interface {
	DeleteBranch(name string) error
}

// Loop walks a branch snapshot and asks the user what to do with each one.
type Loop struct {
	in      io.Reader
	out     *ui.Printer
	deleter Deleter
	logger  *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger for command and delete events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New returns a Loop reading single keystrokes from in. in is read one byte
// per call and should not be wrapped in a buffered reader.
func New(in io.Reader, out *ui.Printer, deleter Deleter, opts ...Option) *Loop {
	l := &Loop{
		in:      in,
		out:     out,
		deleter: deleter,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type step int

const (
	stepNext step = iota
	stepStop
)

// Run reviews branches in order. It returns nil when the user quits, when
// every branch has been handled, or when the input is closed.
func (l *Loop) Run(branches []models.Branch) error {
	for _, b := range branches {
		next, err := l.review(b)
		if err != nil {
			return err
		}
		if next == stepStop {
			return nil
		}
	}
	return nil
}

func (l *Loop) review(b models.Branch) (step, error) {
	if err := l.out.BranchHeader(b); err != nil {
		return stepStop, err
	}

	for {
		if err := l.out.CommandPrompt(); err != nil {
			return stepStop, err
		}
		c, ok, err := l.readByte()
		if err != nil {
			return stepStop, err
		}
		if !ok {
			l.logger.Debug("input closed", "branch", b.Name)
			return stepStop, nil
		}
		if err := l.out.Echo(c); err != nil {
			return stepStop, err
		}

		action := ParseAction(c)
		l.logger.Debug("command", "branch", b.Name, "action", action.String())

		switch action {
		case ActionQuit:
			return stepStop, nil
		case ActionKeep:
			return stepNext, nil
		case ActionDelete:
			return l.confirmDelete(b)
		case ActionShow:
			if err := l.out.Commit(b); err != nil {
				return stepStop, err
			}
		default:
			if err := l.out.Help(); err != nil {
				return stepStop, err
			}
		}
	}
}

func (l *Loop) confirmDelete(b models.Branch) (step, error) {
	if err := l.out.ConfirmDelete(b); err != nil {
		return stepStop, err
	}

	for {
		if err := l.out.ConfirmPrompt(); err != nil {
			return stepStop, err
		}
		c, ok, err := l.readByte()
		if err != nil {
			return stepStop, err
		}
		if !ok {
			l.logger.Debug("input closed, delete aborted", "branch", b.Name)
			return stepStop, nil
		}
		if err := l.out.Echo(c); err != nil {
			return stepStop, err
		}

		switch ParseAnswer(c) {
		case AnswerAccept:
			if err := l.deleter.DeleteBranch(b.Name); err != nil {
				return stepStop, err
			}
			l.logger.Info("branch deleted", "branch", b.Name, "commit", b.Commit.Hash)
			return stepNext, l.out.Deleted()
		case AnswerRefuse:
			return stepNext, l.out.Aborted()
		default:
			if err := l.out.InvalidAnswer(); err != nil {
				return stepStop, err
			}
		}
	}
}

// readByte blocks until one byte is available. ok is false at end of input.
func (l *Loop) readByte() (c byte, ok bool, err error) {
	var buf [1]byte
	for {
		n, err := l.in.Read(buf[:])
		if n == 1 {
			return buf[0], true, nil
		}
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, goerr.Wrap(err, "failed to read input")
		}
	}
}
