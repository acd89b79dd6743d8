//go:build windows

package helper

import (
	"context"
	"fmt"

	"github.com/mtth/shortpath/internal/fspath"
	"golang.org/x/sys/windows"
)

var shortPathName = windows.GetShortPathName

// Native returns a Helper which calls GetShortPathNameW directly instead of spawning a process.
func Native() Helper {
	return nativeHelper{}
}

type nativeHelper struct{}

// ShortPath implements Helper.
func (nativeHelper) ShortPath(_ context.Context, fp fspath.Local) (fspath.Local, error) {
	p, err := windows.UTF16PtrFromString(fp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsafePath, err)
	}
	// Calls return the required buffer size, including the terminating null, when the buffer is too
	// small. The path may change between calls, so retry until the result fits.
	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := shortPathName(p, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHelperFailed, err)
		}
		if n < uint32(len(buf)) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		buf = make([]uint16, n)
	}
}
