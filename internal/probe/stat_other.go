//go:build !unix && !windows

package probe

import "os"

// statFile falls back to size and modification time, the platform has no stable file identity.
func statFile(fp string) (FileStat, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return FileStat{}, err
	}
	return FileStat{Size: info.Size(), ModTime: info.ModTime()}, nil
}
