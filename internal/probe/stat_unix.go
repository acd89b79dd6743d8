//go:build unix

package probe

import (
	"os"

	"golang.org/x/sys/unix"
)

func statFile(fp string) (FileStat, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return FileStat{}, err
	}
	var st unix.Stat_t
	if err := unix.Stat(fp, &st); err != nil {
		return FileStat{}, &os.PathError{Op: "stat", Path: fp, Err: err}
	}
	return FileStat{
		Size:    info.Size(),
		ID:      FileID{Device: uint64(st.Dev), Index: uint64(st.Ino)}, //nolint:unconvert
		ModTime: info.ModTime(),
	}, nil
}
