package terminal

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
)

// Restore puts the terminal back the way it was. Calling it more than once
// only restores once.
type Restore func() error

// MakeRaw switches f to raw mode so single keystrokes are delivered without
// waiting for enter. If f is not a terminal nothing changes, which lets input
// be piped in.
func MakeRaw(f *os.File) (Restore, error) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return func() error { return nil }, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enable raw mode")
	}

	restored := false
	return func() error {
		if restored {
			return nil
		}
		restored = true
		if err := term.Restore(fd, state); err != nil {
			return goerr.Wrap(err, "failed to restore terminal mode")
		}
		return nil
	}, nil
}
