package shortpath

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/name"
	"golang.org/x/sync/errgroup"
)

// maxSegmentWidth is the width up to which segments are never shortened.
const maxSegmentWidth = 8

// Resolve returns a version of the path where long segments are replaced by their short names. A
// segment is shortened while the input's width, minus the savings of the latest replacement, is at
// least MaxLength. Each replacement is only kept if the short candidate denotes
// the same file as the original segment, so the returned path always addresses the input's target.
// Paths under the length limit are returned unchanged unless force is set, and all paths are
// returned unchanged on platforms without short names.
func (s *Service) Resolve(fp fspath.Local, force bool) (fspath.Local, error) {
	if s.passthrough(fp, force) {
		return fp, nil
	}
	key := resolveKey{path: fp, force: force}
	if resolved, ok := s.resolved.Get(key); ok {
		return resolved, nil
	}

	segs := fspath.Split(fp)
	resolved := segs[0]
	base := fspath.Width(fp)
	width := base
	for _, seg := range segs[1:] {
		if fspath.Width(seg) <= maxSegmentWidth ||
			(width < fspath.MaxLength && !force) ||
			!s.pathExists(resolved) {
			resolved = fspath.Join(resolved, seg)
			continue
		}
		original := fspath.Join(resolved, seg)
		next, err := s.resolveSegment(resolved, seg)
		if err != nil {
			return "", err
		}
		// Only the latest segment's savings count against the input's width.
		width = base - (fspath.Width(original) - fspath.Width(next))
		resolved = next
	}

	s.resolved.Set(key, resolved)
	return resolved, nil
}

// resolveSegment returns the shortest validated path to the parent's child.
func (s *Service) resolveSegment(parent fspath.Local, seg string) (fspath.Local, error) {
	original := fspath.Join(parent, seg)
	if resolved, ok := s.segments.Get(original); ok {
		return resolved, nil
	}

	resolved := original
	suffix, ok, err := s.collisionSuffix(parent, seg)
	if err != nil {
		return "", err
	}
	if ok {
		shorted := fspath.Join(parent, name.Short(seg, suffix))
		same, err := s.sameFile(original, shorted)
		if err != nil {
			return "", err
		}
		if same {
			resolved = shorted
		} else {
			slog.Debug(
				"Short candidate rejected.",
				dataAttrs(slog.String("original", original), slog.String("candidate", shorted)),
			)
		}
	}

	s.segments.Set(original, resolved)
	return resolved, nil
}

// ResolveAsync runs Resolve in the background.
func (s *Service) ResolveAsync(fp fspath.Local, force bool) *Pending {
	return goPending(func() (fspath.Local, error) { return s.Resolve(fp, force) })
}

// ResolveAll resolves multiple paths concurrently, returning results in input order. The first
// failure cancels resolutions which have not yet started.
func (s *Service) ResolveAll(ctx context.Context, fps []fspath.Local, force bool) ([]fspath.Local, error) {
	resolved := make([]fspath.Local, len(fps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fp := range fps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			resolved[i], err = s.Resolve(fp, force)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
