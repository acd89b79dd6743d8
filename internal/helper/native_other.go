//go:build !windows

package helper

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtth/shortpath/internal/fspath"
)

// Native returns a Helper which calls GetShortPathNameW directly. It always fails on this
// platform.
func Native() Helper {
	return nativeHelper{}
}

type nativeHelper struct{}

// ShortPath implements Helper.
func (nativeHelper) ShortPath(_ context.Context, _ fspath.Local) (fspath.Local, error) {
	return "", fmt.Errorf("%w: %w", ErrHelperFailed, errors.ErrUnsupported)
}
