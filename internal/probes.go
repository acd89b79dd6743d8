package shortpath

import (
	"errors"
	"fmt"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/probe"
)

// ErrStatFailed is returned when a path which was reported to exist can no longer be stat'ed.
var ErrStatFailed = errors.New("stat failed")

// pathExists is a cached probe.FileSystem.Exists.
func (s *Service) pathExists(fp fspath.Local) bool {
	if ok, hit := s.exists.Get(fp); hit {
		return ok
	}
	ok := s.fs.Exists(fp)
	s.exists.Set(fp, ok)
	return ok
}

// pathStat is a cached probe.FileSystem.Stat. Failures are not cached.
func (s *Service) pathStat(fp fspath.Local) (probe.FileStat, error) {
	if st, ok := s.stats.Get(fp); ok {
		return st, nil
	}
	st, err := s.fs.Stat(fp)
	if err != nil {
		return probe.FileStat{}, fmt.Errorf("%w: %w", ErrStatFailed, err)
	}
	s.stats.Set(fp, st)
	return st, nil
}

// sameFile returns true iff both paths exist and denote the same filesystem object.
func (s *Service) sameFile(original, shorted fspath.Local) (bool, error) {
	if !s.pathExists(original) || !s.pathExists(shorted) {
		return false, nil
	}
	want, err := s.pathStat(original)
	if err != nil {
		return false, err
	}
	got, err := s.pathStat(shorted)
	if err != nil {
		return false, err
	}
	return want.Same(got), nil
}
