// Package probe exposes the filesystem operations needed to validate short paths.
package probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mtth/shortpath/internal/fspath"
)

// FileID identifies a file independently of the path used to reach it.
type FileID struct {
	// Device or volume serial number.
	Device uint64
	// Inode or file index within the device.
	Index uint64
}

// FileStat is the subset of file metadata used to decide whether two paths denote the same file.
type FileStat struct {
	Size    int64
	ID      FileID
	ModTime time.Time
}

// Same returns true iff both stats describe the same filesystem object.
func (s FileStat) Same(other FileStat) bool {
	return s.Size == other.Size && s.ID == other.ID && s.ModTime.Equal(other.ModTime)
}

// FileSystem is the set of filesystem primitives used when resolving short paths.
type FileSystem interface {
	// ReadDir returns the names of the directory's children, in the order the underlying system
	// enumerates them.
	ReadDir(dir fspath.Local) ([]string, error)
	// Exists returns true iff the path can be stat'ed. Errors are reported as absence.
	Exists(fp fspath.Local) bool
	// Stat returns the path's metadata.
	Stat(fp fspath.Local) (FileStat, error)
}

// OS returns the FileSystem backed by the host operating system.
func OS() FileSystem {
	return osFileSystem{}
}

type osFileSystem struct{}

// ReadDir implements FileSystem. Names are not sorted, unlike os.ReadDir, since collision numbering
// depends on enumeration order.
func (osFileSystem) ReadDir(dir fspath.Local) ([]string, error) {
	f, err := os.Open(fspath.WithTrailingSeparator(dir))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	return names, nil
}

// Exists implements FileSystem.
func (osFileSystem) Exists(fp fspath.Local) bool {
	_, err := os.Stat(fp)
	return err == nil
}

// Stat implements FileSystem.
func (osFileSystem) Stat(fp fspath.Local) (FileStat, error) {
	return statFile(fp)
}
