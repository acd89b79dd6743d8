package shortpath

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/name"
)

// ErrListingFailed wraps errors returned when listing a directory. The underlying error is kept in
// the chain.
var ErrListingFailed = errors.New("directory listing failed")

// collisionSuffix returns the number which disambiguates the child's short name among its siblings.
// The second return value is false if the child was not part of the directory's index. Indices are
// built once per directory and reused until they expire, even if the directory changes.
func (s *Service) collisionSuffix(dir fspath.Local, child string) (int, bool, error) {
	index, ok := s.indexes.Get(dir)
	if !ok {
		var err error
		index, err = s.indexDirectory(dir)
		if err != nil {
			return 0, false, err
		}
		s.indexes.Set(dir, index)
	}
	suffix, ok := index[child]
	return suffix, ok, nil
}

// indexDirectory numbers each child of the directory in listing order, starting from 1 for each
// distinct short name key.
func (s *Service) indexDirectory(dir fspath.Local) (map[string]int, error) {
	names, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListingFailed, err)
	}
	index := make(map[string]int, len(names))
	counts := make(map[string]int)
	for _, child := range names {
		key := name.Key(child)
		counts[key]++
		index[child] = counts[key]
	}
	slog.Debug("Indexed directory.", dataAttrs(slog.String("dir", dir), slog.Int("children", len(names))))
	return index, nil
}
