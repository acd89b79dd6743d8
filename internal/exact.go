package shortpath

import (
	"context"
	"log/slog"

	"github.com/mtth/shortpath/internal/except"
	"github.com/mtth/shortpath/internal/fspath"
)

// ExactShortPath returns the path's short form as reported by the operating system's helper. The
// same passthrough rules as Resolve apply. Helper failures are returned as-is and never retried.
func (s *Service) ExactShortPath(ctx context.Context, fp fspath.Local, force bool) (fspath.Local, error) {
	if s.passthrough(fp, force) {
		return fp, nil
	}
	if short, ok := s.exact.Get(fp); ok {
		return short, nil
	}
	short, err := s.helper.ShortPath(ctx, fp)
	if err != nil {
		slog.Warn("Short path helper failed.", except.LogErrAttr(err), dataAttrs(slog.String("path", fp)))
		return "", err
	}
	s.exact.Set(fp, short)
	return short, nil
}

// ExactShortPathAsync runs ExactShortPath in the background.
func (s *Service) ExactShortPathAsync(ctx context.Context, fp fspath.Local, force bool) *Pending {
	return goPending(func() (fspath.Local, error) { return s.ExactShortPath(ctx, fp, force) })
}
