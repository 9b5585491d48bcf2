package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidOption is returned for an unknown log level.
var ErrInvalidOption = errors.New("invalid option")

var (
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

	// logFile is the file opened by the last Configure call, if any.
	logFile *os.File
)

// Default returns the default logger. It discards everything until
// Configure is given an output.
func Default() *slog.Logger {
	return defaultLogger
}

// Configure sets the default logger's level and destination. An empty output
// keeps logs off: stdout belongs to the interactive session.
func Configure(logLevel, logOutput string) error {
	levelMap := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	level, ok := levelMap[logLevel]
	if !ok {
		return goerr.Wrap(ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	var (
		w  io.Writer
		fd *os.File
	)
	switch logOutput {
	case "":
		w = io.Discard
	case "stderr":
		w = os.Stderr
	default:
		var err error
		fd, err = os.OpenFile(filepath.Clean(logOutput), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
		}
		w = fd
	}

	prev := logFile
	logFile = fd
	defaultLogger = slog.New(clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(true),
		clog.WithColorMap(&clog.ColorMap{
			Level: map[slog.Level]*color.Color{
				slog.LevelDebug: color.New(color.FgGreen, color.Bold),
				slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
				slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
				slog.LevelError: color.New(color.FgRed, color.Bold),
			},
			LevelDefault: color.New(color.FgBlue, color.Bold),
			Time:         color.New(color.FgWhite),
			Message:      color.New(color.FgHiWhite),
			AttrKey:      color.New(color.FgHiCyan),
			AttrValue:    color.New(color.FgHiWhite),
		}),
		clog.WithAttrHook(clog.GoerrHook),
	))

	return closeFile(prev)
}

// Close closes the log file opened by Configure. Logging falls back to
// discarding records.
func Close() error {
	if logFile == nil {
		return nil
	}
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	fd := logFile
	logFile = nil
	return closeFile(fd)
}

func closeFile(fd *os.File) error {
	if fd == nil {
		return nil
	}
	if err := fd.Close(); err != nil {
		return goerr.Wrap(err, "failed to close log file", goerr.V("path", fd.Name()))
	}
	return nil
}
