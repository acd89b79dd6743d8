// Package helper retrieves exact short paths from the operating system.
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"unicode"

	"al.essio.dev/pkg/shellescape"
	"github.com/mtth/shortpath/internal/fspath"
)

var (
	// ErrHelperFailed is returned when the helper exits abnormally or reports a diagnostic.
	ErrHelperFailed = errors.New("short path helper failed")
	// ErrUnsafePath is returned for paths which cannot be embedded in the helper's command line
	// without being interpreted.
	ErrUnsafePath = errors.New("path cannot be passed to helper")
)

// Helper returns the short form of an existing path as computed by the operating system.
type Helper interface {
	ShortPath(ctx context.Context, fp fspath.Local) (fspath.Local, error)
}

// Command returns a Helper which runs the command interpreter's short path expansion (%~sI) on the
// path.
func Command() Helper {
	return commandHelper{}
}

type commandHelper struct{}

// ShortPath implements Helper.
func (commandHelper) ShortPath(ctx context.Context, fp fspath.Local) (fspath.Local, error) {
	if err := checkPath(fp); err != nil {
		return "", err
	}
	args := commandArgs(fp)
	slog.Debug("Running short path helper.", slog.String("command", shellescape.QuoteCommand(args)))

	stdout, stderr, err := runCommand(newCommand(ctx, args))
	if err != nil {
		return "", fmt.Errorf("%w: %w: %s", ErrHelperFailed, err, strings.TrimSpace(string(stderr)))
	}
	if len(stderr) > 0 {
		return "", fmt.Errorf("%w: %s", ErrHelperFailed, strings.TrimSpace(string(stderr)))
	}
	return strings.TrimRightFunc(string(stdout), unicode.IsSpace), nil
}

// checkPath rejects characters which the interpreter expands or treats as delimiters even inside
// double quotes.
func checkPath(fp fspath.Local) error {
	if fp == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	if i := strings.IndexFunc(fp, func(r rune) bool {
		return r == '"' || r == '%' || unicode.IsControl(r)
	}); i >= 0 {
		return fmt.Errorf("%w: invalid character %q in %s", ErrUnsafePath, fp[i], fp)
	}
	return nil
}

// commandArgs returns the interpreter invocation for a path. Delayed expansion is turned off so that
// exclamation marks are kept verbatim.
func commandArgs(fp fspath.Local) []string {
	return []string{
		interpreter(),
		"/d", "/v:off", "/c",
		"for", "%I", "in", `("` + fp + `")`, "do", "@echo", "%~sI",
	}
}

var runCommand = func(cmd *exec.Cmd) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}
