//go:build !windows

package helper

import (
	"context"
	"os/exec"
)

func interpreter() string {
	return "cmd.exe"
}

func newCommand(ctx context.Context, args []string) *exec.Cmd {
	return exec.CommandContext(ctx, args[0], args[1:]...)
}
