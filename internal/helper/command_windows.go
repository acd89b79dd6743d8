//go:build windows

package helper

import (
	"cmp"
	"context"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

func interpreter() string {
	return cmp.Or(os.Getenv("ComSpec"), "cmd.exe")
}

// newCommand passes the command line verbatim. The interpreter does its own parsing, which the
// default argument escaping would break.
func newCommand(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, args[0])
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    syscall.EscapeArg(args[0]) + " " + strings.Join(args[1:], " "),
		HideWindow: true,
	}
	return cmd
}
